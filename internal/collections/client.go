package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the collections search API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	query     Query
	// timeout bounds a fetch whose context carries no deadline.
	timeout time.Duration
}

// Query holds the fixed search parameters sent with every fetch.
type Query struct {
	Text     string
	PageSize int
	Images   bool
}

const (
	DefaultBaseURL   = "https://api.vam.ac.uk"
	DefaultQuery     = "fashion"
	DefaultFetchSize = 30
	defaultUserAgent = "vitrine/0.1"
	searchPath       = "/v2/objects/search"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for baseURL. Zero-valued query fields fall back
// to the defaults.
func NewClient(baseURL string, query Query) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query.Text) == "" {
		query.Text = DefaultQuery
	}
	if query.PageSize <= 0 {
		query.PageSize = DefaultFetchSize
	}
	return &Client{
		baseURL: base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		query:     query,
		timeout:   defaultTimeout,
	}, nil
}

// FetchRecords runs the configured search and maps the hits to Records.
// The context deadline bounds the request; without one the client applies
// a 10s default. Every failure is a *FetchError.
func (c *Client) FetchRecords(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, &FetchError{Kind: KindNetwork, Err: errors.New("client is nil")}
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	values := url.Values{}
	values.Set("q", c.query.Text)
	values.Set("page_size", strconv.Itoa(c.query.PageSize))
	if c.query.Images {
		values.Set("images", "true")
	}
	rel := &url.URL{Path: searchPath, RawQuery: values.Encode()}

	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	if payload.Records == nil {
		return nil, &FetchError{Kind: KindDecode, Err: errors.New("payload has no records")}
	}
	return MapRecords(payload.Records), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return &FetchError{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Kind: KindStatus, Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return transportError(err)
		}
		return &FetchError{Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
