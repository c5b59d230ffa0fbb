package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/logger"
	"golang.org/x/time/rate"
)

const (
	opSearch  = "search channels"
	opChannel = "get channel"
	opVideos  = "get channel videos"

	maxErrorBody = 64 << 10
)

// API is the contract the viewer needs from the metadata provider
type API interface {
	SearchChannels(ctx context.Context, query string) ([]common.ChannelSummary, error)
	GetChannelDetail(ctx context.Context, channelID string) (*common.ChannelDetail, error)
	GetChannelVideos(ctx context.Context, channelID string, maxResults int) ([]common.VideoSummary, error)
}

// Client talks to the provider over HTTP
type Client struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
	limiter *rate.Limiter
	log     *logger.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log.WithComponent("provider")
	}
}

// New creates a provider client
func New(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider base URL: %w", err)
	}

	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Limit(config.RateLimit)
	}

	c := &Client{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: baseURL,
		limiter: rate.NewLimiter(limit, config.Burst),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchChannels runs a channel search for query
func (c *Client) SearchChannels(ctx context.Context, query string) ([]common.ChannelSummary, error) {
	endpoint := c.baseURL.JoinPath("channels", "search")
	body := struct {
		Query string `json:"query"`
	}{Query: query}

	var results []common.ChannelSummary
	if err := c.do(ctx, opSearch, http.MethodPost, endpoint, body, &results); err != nil {
		return nil, err
	}

	for i := range results {
		if err := results[i].Validate(); err != nil {
			return nil, invalidResponse(opSearch, err)
		}
	}
	return results, nil
}

// GetChannelDetail fetches the full record of a channel
func (c *Client) GetChannelDetail(ctx context.Context, channelID string) (*common.ChannelDetail, error) {
	endpoint := c.baseURL.JoinPath("channels", url.PathEscape(channelID))

	var detail common.ChannelDetail
	if err := c.do(ctx, opChannel, http.MethodGet, endpoint, nil, &detail); err != nil {
		return nil, err
	}

	if err := detail.Validate(); err != nil {
		return nil, invalidResponse(opChannel, err)
	}
	return &detail, nil
}

// GetChannelVideos fetches up to maxResults of the channel's recent videos,
// in the order the provider returns them. maxResults <= 0 means DefaultMaxVideos.
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int) ([]common.VideoSummary, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxVideos
	}

	endpoint := c.baseURL.JoinPath("channels", url.PathEscape(channelID), "videos")
	q := endpoint.Query()
	q.Set("max_results", strconv.Itoa(maxResults))
	endpoint.RawQuery = q.Encode()

	var videos []common.VideoSummary
	if err := c.do(ctx, opVideos, http.MethodGet, endpoint, nil, &videos); err != nil {
		return nil, err
	}

	for i := range videos {
		if err := videos[i].Validate(); err != nil {
			return nil, invalidResponse(opVideos, err)
		}
	}
	if len(videos) > maxResults {
		videos = videos[:maxResults]
	}
	return videos, nil
}

func (c *Client) do(ctx context.Context, op, method string, endpoint *url.URL, in, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return NewProviderErrorWithCause(op, err)
	}

	var reqBody io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return NewProviderErrorWithCause(op, fmt.Errorf("failed to marshal request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return NewProviderErrorWithCause(op, fmt.Errorf("failed to create request: %w", err))
	}

	requestID := uuid.NewString()
	c.setHeaders(req, requestID, in != nil)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WarnWithFields("%s failed", []logger.Field{logger.RequestID(requestID), logger.Error(err)}, op)
		return NewProviderErrorWithCause(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugWithFields("%s %s", []logger.Field{
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(start)),
		logger.RequestID(requestID),
	}, method, endpoint.Path)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, requestID string, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
}

// errorResponse is the provider's failure body. detail is usually a string;
// validation failures carry a list, which is not surfaced.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) handleErrorResponse(op string, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return NewProviderError(op, resp.StatusCode, "")
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return NewProviderError(op, resp.StatusCode, "")
	}

	var detail string
	if err := json.Unmarshal(errResp.Detail, &detail); err != nil {
		detail = ""
	}

	c.log.WarnWithFields("%s rejected", []logger.Field{logger.Status(resp.StatusCode), logger.F("detail", detail)}, op)
	return NewProviderError(op, resp.StatusCode, detail)
}

func invalidResponse(op string, err error) *ProviderError {
	return NewProviderErrorWithCause(op, fmt.Errorf("invalid response: %w", err))
}
