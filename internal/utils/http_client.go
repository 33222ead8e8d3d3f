package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace id between a peer and the signer feed.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient wraps resty.Client with the defaults the peer side needs.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL. A zero
// timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// NewJSONRequest prepares a request bound to ctx with a JSON content type.
// The trace id stored in ctx, if any, is forwarded in TraceIDHeader.
func (c *HTTPClient) NewJSONRequest(ctx context.Context) *resty.Request {
	r := c.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return r
}
