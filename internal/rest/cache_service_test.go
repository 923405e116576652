package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hazelcast/cache-config-engine/internal/config"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

type recordedRequest struct {
	method  string
	path    string
	query   map[string][]string
	header  http.Header
	body    string
	user    string
	pass    string
	hasAuth bool
}

var _ = Describe("Cache service", func() {
	var (
		server   *httptest.Server
		recorded []recordedRequest
		status   int
		reply    string
		service  *CacheService
		metrics  *Metrics
		ctx      context.Context
	)

	BeforeEach(func() {
		recorded = nil
		status = http.StatusOK
		reply = ""
		ctx = context.Background()
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			user, pass, ok := r.BasicAuth()
			recorded = append(recorded, recordedRequest{
				method:  r.Method,
				path:    r.URL.Path,
				query:   r.URL.Query(),
				header:  r.Header.Clone(),
				body:    string(body),
				user:    user,
				pass:    pass,
				hasAuth: ok,
			})
			w.WriteHeader(status)
			_, _ = io.WriteString(w, reply)
		}))

		var err error
		metrics, err = NewMetrics(prometheus.NewRegistry())
		Expect(err).ShouldNot(HaveOccurred())
		service, err = NewCacheService(server.URL,
			WithBasicAuth("admin", "secret"),
			WithMetrics(metrics),
		)
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Context("Submitting a configuration", func() {
		It("should post the document with the format's media type", func() {
			doc := []byte("<local-cache statistics=\"true\"></local-cache>\n")
			_, err := service.SubmitConfiguration(ctx, "books", doc, config.FormatXML)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(recorded).Should(HaveLen(1))
			r := recorded[0]
			Expect(r.method).Should(Equal(http.MethodPost))
			Expect(r.path).Should(Equal("/rest/v2/caches/books"))
			Expect(r.header.Get("Content-Type")).Should(Equal(n.MediaTypeXML))
			Expect(r.header.Get(n.RequestIDHeader)).ShouldNot(BeEmpty())
			Expect(r.body).Should(Equal(string(doc)))
			Expect(r.hasAuth).Should(BeTrue())
			Expect(r.user).Should(Equal("admin"))
			Expect(r.pass).Should(Equal("secret"))
		})

		It("should send unstructured drafts as plain text", func() {
			_, err := service.SubmitConfiguration(ctx, "books", []byte("anything"), "")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(recorded[0].header.Get("Content-Type")).Should(Equal(n.MediaTypeText))
		})

		It("should escape the cache name", func() {
			_, err := service.SubmitConfiguration(ctx, "my cache", []byte("{}"), config.FormatJSON)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(recorded[0].path).Should(Equal("/rest/v2/caches/my cache"))
		})

		It("should return the server message verbatim on failure", func() {
			status = http.StatusBadRequest
			reply = "ISPN000327: Cannot find a parser for element 'foo'\n"

			resp, err := service.SubmitConfiguration(ctx, "books", []byte("<foo/>"), config.FormatXML)
			Expect(err).Should(HaveOccurred())
			Expect(resp.StatusCode).Should(Equal(http.StatusBadRequest))

			ce, ok := AsCacheError(err)
			Expect(ok).Should(BeTrue())
			Expect(ce.Status).Should(Equal(http.StatusBadRequest))
			Expect(ce.Message).Should(Equal(reply))
		})

		It("should count requests by operation and status", func() {
			_, _ = service.SubmitConfiguration(ctx, "a", []byte("{}"), config.FormatJSON)
			status = http.StatusConflict
			_, _ = service.SubmitConfiguration(ctx, "a", []byte("{}"), config.FormatJSON)

			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("submit", "200"))).Should(Equal(1.0))
			Expect(testutil.ToFloat64(metrics.Requests.WithLabelValues("submit", "409"))).Should(Equal(1.0))
		})
	})

	Context("Setting an attribute", func() {
		It("should post the attribute as query parameters", func() {
			_, err := service.SetAttribute(ctx, "books", "memory.max-count", "100")
			Expect(err).ShouldNot(HaveOccurred())

			r := recorded[0]
			Expect(r.method).Should(Equal(http.MethodPost))
			Expect(r.path).Should(Equal("/rest/v2/caches/books"))
			Expect(r.query).Should(Equal(map[string][]string{
				"action":          {n.ActionSetMutableAttribute},
				"attribute-name":  {"memory.max-count"},
				"attribute-value": {"100"},
			}))
		})

		It("should report rejected values", func() {
			status = http.StatusBadRequest
			reply = "not mutable"
			_, err := service.SetAttribute(ctx, "books", "encoding", "x")
			ce, ok := AsCacheError(err)
			Expect(ok).Should(BeTrue())
			Expect(ce.Message).Should(Equal("not mutable"))
		})
	})

	Context("Fetching a configuration", func() {
		It("should ask for the requested format", func() {
			reply = "local-cache:\n  statistics: true\n"
			data, err := service.FetchConfiguration(ctx, "books", config.FormatYAML)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(data)).Should(Equal(reply))

			r := recorded[0]
			Expect(r.method).Should(Equal(http.MethodGet))
			Expect(url.Values(r.query).Get("action")).Should(Equal(n.ActionConfig))
			Expect(r.header.Get("Accept")).Should(Equal(n.MediaTypeYAML))
		})

		It("should fail for unknown caches", func() {
			status = http.StatusNotFound
			_, err := service.FetchConfiguration(ctx, "missing", config.FormatJSON)
			ce, ok := AsCacheError(err)
			Expect(ok).Should(BeTrue())
			Expect(ce.Status).Should(Equal(http.StatusNotFound))
		})
	})

	Context("Listing caches", func() {
		It("should decode the names", func() {
			reply = `["books","authors"]`
			names, err := service.CacheNames(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(names).Should(Equal([]string{"books", "authors"}))
			Expect(recorded[0].path).Should(Equal("/rest/v2/caches"))
		})

		It("should accept an empty body", func() {
			names, err := service.CacheNames(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(names).Should(BeEmpty())
		})
	})

	Context("Cancelled context", func() {
		It("should return the context error", func() {
			cctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
			defer cancel()
			<-cctx.Done()
			_, err := service.CacheNames(cctx)
			Expect(err).Should(MatchError(context.DeadlineExceeded))
		})
	})
})

var _ = Describe("Client", func() {
	It("should reject addresses without a host", func() {
		_, err := NewClient("localhost")
		Expect(err).Should(HaveOccurred())
	})

	It("should resolve paths below the base path", func() {
		c, err := NewClient("http://example.com/console")
		Expect(err).ShouldNot(HaveOccurred())
		req, err := c.NewRequest(http.MethodGet, n.CachesPath, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(req.URL.String()).Should(Equal("http://example.com/console/rest/v2/caches"))
	})

	It("should encode values as JSON", func() {
		c, err := NewClient("http://example.com")
		Expect(err).ShouldNot(HaveOccurred())
		req, err := c.NewRequest(http.MethodPost, "x", map[string]int{"a": 1})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(req.Header.Get("Content-Type")).Should(Equal(n.MediaTypeJSON))
		body, _ := io.ReadAll(req.Body)
		Expect(string(body)).Should(Equal("{\"a\":1}\n"))
	})

	It("should register its metrics once", func() {
		reg := prometheus.NewRegistry()
		_, err := NewMetrics(reg)
		Expect(err).ShouldNot(HaveOccurred())
		_, err = NewMetrics(reg)
		Expect(err).Should(HaveOccurred())
	})
})
