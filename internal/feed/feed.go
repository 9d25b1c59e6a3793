package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Chackochi310/News/internal/news"
)

var (
	// ErrFetchFailed covers network errors and non-2xx responses.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrEmptyResult means a well-formed response carried no articles.
	ErrEmptyResult = errors.New("no articles in response")
)

const (
	DefaultQuery    = "latest"
	DefaultLanguage = "en"
)

// maxBodySize caps how much of an upstream body is read.
const maxBodySize = 8 << 20

// Query holds the search parameters forwarded to the news API.
type Query struct {
	Query    string
	Language string
	Page     int
}

// Normalize fills in the defaults: "latest", "en" and page 1.
func (q Query) Normalize() Query {
	if q.Query == "" {
		q.Query = DefaultQuery
	}
	if q.Language == "" {
		q.Language = DefaultLanguage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]news.Article, error)
}

// GNewsClient talks to the GNews search endpoint.
type GNewsClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGNewsClient(baseURL, token string, timeout time.Duration) *GNewsClient {
	return &GNewsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search performs one upstream request and returns the body untouched.
func (c *GNewsClient) Search(ctx context.Context, q Query) ([]byte, error) {
	q = q.Normalize()
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("lang", q.Language)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("token", c.token)

	return get(ctx, c.client, c.baseURL+"/search?"+params.Encode())
}

func (c *GNewsClient) Fetch(ctx context.Context, q Query) ([]news.Article, error) {
	body, err := c.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return decode(body)
}

// ProxyClient fetches through the newsdesk /news endpoint.
type ProxyClient struct {
	serverURL string
	client    *http.Client
}

func NewProxyClient(serverURL string, timeout time.Duration) *ProxyClient {
	return &ProxyClient{
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *ProxyClient) Fetch(ctx context.Context, q Query) ([]news.Article, error) {
	q = q.Normalize()
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("language", q.Language)
	params.Set("page", strconv.Itoa(q.Page))

	body, err := get(ctx, c.client, c.serverURL+"/news?"+params.Encode())
	if err != nil {
		return nil, err
	}
	return decode(body)
}

func get(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetchFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}
	return body, nil
}

func decode(body []byte) ([]news.Article, error) {
	var r news.Response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrFetchFailed, err)
	}
	if len(r.Articles) == 0 {
		return nil, ErrEmptyResult
	}
	return r.Articles, nil
}
