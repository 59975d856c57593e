package sayobot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/rs/zerolog"
)

const (
	userAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36 Edg/132.0.0.0`
	referer   = "https://osu.sayobot.cn/"
)

// Client holds the transport and endpoints shared by the request builders.
// Builders created from one Client are independent and must not be reused
// after Do.
type Client struct {
	client    *http.Client
	endpoints Endpoints
}

func NewClient() *Client {
	return NewClientWithEndpoints(Endpoints{})
}

func NewClientWithEndpoints(endpoints Endpoints) *Client {
	return &Client{
		client:    &http.Client{},
		endpoints: endpoints.WithDefaults(),
	}
}

// WithHTTPClient replaces the underlying transport. Its Timeout is ignored,
// every request applies its own.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.client = client
	return c
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

func (c *Client) BeatmapInfo() *InfoRequest {
	return newInfoRequest(c)
}

func (c *Client) Search() *SearchRequest {
	return newSearchRequest(c)
}

func (c *Client) Resource() *ResourceRequest {
	return newResourceRequest(c)
}

func logger(ctx context.Context) zerolog.Logger {
	return zerolog.Ctx(ctx).With().Str("module", "sayobot").Logger()
}

// get issues a GET whose connect and body read are bounded by timeout.
// The caller owns the response body on success.
func (c *Client) get(ctx context.Context, url string, timeout time.Duration) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("[sayobot] failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	client := &http.Client{
		Transport:     c.client.Transport,
		CheckRedirect: c.client.CheckRedirect,
		Jar:           c.client.Jar,
		Timeout:       timeout,
	}
	l := logger(ctx)
	l.Trace().Msgf("Requesting %s %s", req.Method, req.URL.String())
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[sayobot] failed to send request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, url string, timeout time.Duration, v any) error {
	resp, err := c.get(ctx, url, timeout)
	if err != nil {
		return err
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("[sayobot] failed to read response: %w", err)
	}
	err = json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
