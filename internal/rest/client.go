package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

type Client struct {
	BaseURL *url.URL
	client  *http.Client

	username string
	password string
	metrics  *Metrics
	log      logr.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

func WithBasicAuth(username, password string) Option {
	return func(cl *Client) {
		cl.username, cl.password = username, password
	}
}

func WithMetrics(m *Metrics) Option {
	return func(cl *Client) {
		cl.metrics = m
	}
}

func WithLogger(l logr.Logger) Option {
	return func(cl *Client) {
		cl.log = l
	}
}

// NewClient returns a client for the API rooted at address.
func NewClient(address string, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid address %q: scheme and host are required", address)
	}
	// relative references resolve below the base path only when it ends with a slash
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	c := &Client{
		BaseURL: baseURL,
		client:  &http.Client{},
		log:     zapr.NewLogger(zap.NewNop()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) NewRequest(method, url string, body interface{}) (*http.Request, error) {
	u, err := c.BaseURL.Parse(url)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	var r io.Reader

	// serialize the request body
	switch v := body.(type) {
	case nil:
		// do nothing
	case io.Reader:
		r = v
	case []byte:
		r = bytes.NewReader(v)
	case string:
		r = strings.NewReader(v)
	default:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
		header.Set("Content-Type", n.MediaTypeJSON)
		r = buf
	}

	req, err := http.NewRequest(method, u.String(), r)
	if err != nil {
		return nil, err
	}
	req.Header = header
	return req, nil
}

// Do sends the request under the operation name used for logs and metrics. A response body is
// copied into v when it is an io.Writer and decoded as JSON otherwise.
func (c *Client) Do(ctx context.Context, operation string, req *http.Request, v interface{}) (*http.Response, error) {
	req = req.WithContext(ctx)
	requestID := uuid.New().String()
	req.Header.Set(n.RequestIDHeader, requestID)
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	log := c.log.WithValues("operation", operation, "requestID", requestID)
	log.V(1).Info("Sending request", "method", req.Method, "url", req.URL.Redacted())

	start := time.Now()
	resp, err := c.client.Do(req)
	c.observe(operation, resp, start)
	if err != nil {
		// If we got an error, and the context has been canceled,
		// the context's error is probably more useful.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	if err = checkResponse(resp); err != nil {
		log.Info("Request failed", "status", resp.StatusCode)
		return resp, err
	}

	switch v := v.(type) {
	case nil:
		// do nothing
	case io.Writer:
		_, err = io.Copy(v, resp.Body)
	default:
		d := json.NewDecoder(resp.Body)
		if err2 := d.Decode(v); err2 != nil {
			// ignore EOF errors caused by empty response body
			if err2 != io.EOF {
				err = err2
			}
		}
	}

	return resp, err
}

func (c *Client) observe(operation string, resp *http.Response, start time.Time) {
	if c.metrics == nil {
		return
	}
	code := "error"
	if resp != nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.Requests.With(prometheus.Labels{"operation": operation, "code": code}).Inc()
	c.metrics.Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func checkResponse(r *http.Response) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}
	body, _ := io.ReadAll(r.Body)
	return &ErrorResponse{Response: r, Body: string(body)}
}

// ErrorResponse is returned for responses with a non 2xx status. Body holds the response text.
type ErrorResponse struct {
	Response *http.Response
	Body     string
}

func (r *ErrorResponse) Error() string {
	return fmt.Sprintf("%v %v: %d", r.Response.Request.Method, r.Response.Request.URL.Redacted(), r.Response.StatusCode)
}
