package robotapi

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"robocompany/common"
	"robocompany/errdefs"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Fetcher interface {
	FetchRobots(ctx context.Context) ([]common.Robot, error)
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. with an httptest server client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds the whole request including reading the body. 0 keeps the request unbounded.
// The timeout goes onto a copy of the http client, a client passed with WithHTTPClient is not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New builds a client for the robots document below baseURL. The base URL is
// treated as a directory, so a missing trailing slash is added.
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid robots base url %q", baseURL)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("invalid robots base url %q: scheme must be http or https", baseURL)
	}

	client := &Client{
		endpoint: base.ResolveReference(&url.URL{Path: common.RobotsResource}).String(),
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 5 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout != 0 {
		httpClient := *client.httpClient
		httpClient.Timeout = client.timeout
		client.httpClient = &httpClient
	}

	return client, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchRobots issues one GET for the robots document and returns the records in
// server order. Every failure is reported as errdefs.ErrFetchFailed, no retries.
func (c *Client) FetchRobots(ctx context.Context) ([]common.Robot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errdefs.FetchFailed(errors.Wrap(err, "failed to build robots request"))
	}

	log.Debug().Str("url", c.endpoint).Msg("fetching robots")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errdefs.FetchFailed(errors.Wrap(err, "failed to request robots"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, errdefs.FetchFailed(errors.Wrapf(errdefs.ErrUnexpectedStatus, "GET %s returned %d", c.endpoint, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errdefs.FetchFailed(errors.Wrap(err, "failed to read robots"))
	}

	// Unmarshal rejects anything after the document, a Decoder would stop at the first value
	robots := make([]common.Robot, 0)
	err = json.Unmarshal(body, &robots)
	if err != nil {
		return nil, errdefs.FetchFailed(errors.Wrap(err, "failed to decode robots"))
	}

	// a literal null decodes without error but is not a list
	if robots == nil {
		return nil, errdefs.FetchFailed(errors.Wrap(errdefs.ErrFailedToParse, "robots document is null"))
	}

	log.Debug().Int("count", len(robots)).Msg("fetched robots")

	return robots, nil
}
