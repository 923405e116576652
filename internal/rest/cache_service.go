package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hazelcast/cache-config-engine/internal/config"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

// CacheService talks to the cache endpoints of the cluster REST API.
type CacheService struct {
	client *Client
}

func NewCacheService(address string, opts ...Option) (*CacheService, error) {
	c, err := NewClient(address, opts...)
	if err != nil {
		return nil, err
	}
	c.log = c.log.WithName("rest")
	return &CacheService{client: c}, nil
}

// CacheError is a request the cluster refused. Message is the response body, unchanged.
type CacheError struct {
	Status   int
	Message  string
	Response *http.Response
}

func (e *CacheError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v %v: %d", e.Response.Request.Method, e.Response.Request.URL.Path, e.Status)
	}
	return fmt.Sprintf("%v %v: %d %v", e.Response.Request.Method, e.Response.Request.URL.Path, e.Status, e.Message)
}

// AsCacheError returns the CacheError wrapped in err, if any.
func AsCacheError(err error) (*CacheError, bool) {
	var ce *CacheError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// SubmitConfiguration creates the cache from a rendered document. Text that is in none of the
// three formats is sent as plain text and left to the cluster to judge.
func (s *CacheService) SubmitConfiguration(ctx context.Context, name string, doc []byte, f config.Format) (*http.Response, error) {
	req, err := s.client.NewRequest(http.MethodPost, cachePath(name, nil), doc)
	if err != nil {
		return nil, err
	}
	contentType := n.MediaTypeText
	if f != "" {
		contentType = f.MediaType()
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(ctx, "submit", req, nil)
	if err != nil {
		return resp, asCacheError(err)
	}
	s.client.log.Info("Cache created", "cache", name, "format", string(f))
	return resp, nil
}

// SetAttribute changes one mutable attribute of an existing cache. The value is sent as rendered.
func (s *CacheService) SetAttribute(ctx context.Context, name, attribute, value string) (*http.Response, error) {
	query := url.Values{
		"action":          {n.ActionSetMutableAttribute},
		"attribute-name":  {attribute},
		"attribute-value": {value},
	}
	req, err := s.client.NewRequest(http.MethodPost, cachePath(name, query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(ctx, "set-attribute", req, nil)
	if err != nil {
		return resp, asCacheError(err)
	}
	s.client.log.Info("Cache attribute updated", "cache", name, "attribute", attribute)
	return resp, nil
}

// FetchConfiguration returns the configuration of a cache rendered in f.
func (s *CacheService) FetchConfiguration(ctx context.Context, name string, f config.Format) ([]byte, error) {
	req, err := s.client.NewRequest(http.MethodGet, cachePath(name, url.Values{"action": {n.ActionConfig}}), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", f.MediaType())

	var buf bytes.Buffer
	if _, err := s.client.Do(ctx, "fetch", req, &buf); err != nil {
		return nil, asCacheError(err)
	}
	return buf.Bytes(), nil
}

// CacheNames lists the caches defined in the cluster.
func (s *CacheService) CacheNames(ctx context.Context) ([]string, error) {
	req, err := s.client.NewRequest(http.MethodGet, n.CachesPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", n.MediaTypeJSON)

	var names []string
	if _, err := s.client.Do(ctx, "list", req, &names); err != nil {
		return nil, asCacheError(err)
	}
	return names, nil
}

func cachePath(name string, query url.Values) string {
	p := n.CachesPath + "/" + url.PathEscape(name)
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	return p
}

func asCacheError(err error) error {
	var er *ErrorResponse
	if !errors.As(err, &er) {
		return err
	}
	return &CacheError{
		Status:   er.Response.StatusCode,
		Message:  er.Body,
		Response: er.Response,
	}
}
