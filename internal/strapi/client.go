// Package strapi is the read-only data access layer for the storefront CMS.
//
// A Client built without a base URL is disabled: every accessor returns its
// empty payload and no request leaves the process.
package strapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"contentd/pkg/cache"
)

// ErrFetchFailed is matched by every non-2xx upstream answer.
var ErrFetchFailed = errors.New("failed to fetch data")

// StatusError reports a non-2xx upstream status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d", ErrFetchFailed, e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrFetchFailed
}

// Doer is the subset of *http.Client the client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL  string
	token    string
	enabled  bool
	http     Doer
	cache    cache.Store
	cacheTTL time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithCache serves tagged requests from store until their tags are
// invalidated. ttl <= 0 keeps entries until invalidation.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.cacheTTL = ttl
	}
}

func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
	c.enabled = c.baseURL != ""
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// Enabled reports whether a CMS base URL was configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// RequestOptions carries transport options for a single call.
type RequestOptions struct {
	Header http.Header
	Tags   []string
}

// Response is a fully read upstream answer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func jsonHeader() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	return h
}

// Request performs GET baseURL+endpoint with the bearer token. When the
// client is disabled it answers 200 {} without any I/O. Caller headers
// never override Authorization.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	if !c.enabled {
		return &Response{StatusCode: http.StatusOK, Header: jsonHeader(), Body: []byte("{}")}, nil
	}

	target := c.baseURL + endpoint
	useCache := c.cache != nil && len(opts.Tags) > 0
	key := cacheKey(target, opts.Tags)

	if useCache {
		// a broken cache is a miss
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			return &Response{StatusCode: http.StatusOK, Header: jsonHeader(), Body: data}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	for k, vals := range opts.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	req.Header.Del("Authorization")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if useCache {
		_ = c.cache.Set(ctx, key, body, c.cacheTTL, opts.Tags...)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header.Clone(), Body: body}, nil
}

// cacheKey scopes a cached body to its URL and its tag set, so the same URL
// read under another tag is a separate entry invalidated by that tag.
func cacheKey(target string, tags []string) string {
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	return target + "|" + strings.Join(slices.Compact(sorted), ",")
}

// fetch requests endpoint tagged with tag and decodes the body into T.
func fetch[T any](ctx context.Context, c *Client, endpoint, tag string) (T, error) {
	var out T
	res, err := c.Request(ctx, endpoint, RequestOptions{Tags: []string{tag}})
	if err != nil {
		return out, err
	}
	if err := res.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return out, nil
}
