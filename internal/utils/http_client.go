package utils

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LoggingTransport implements http.RoundTripper and logs outbound calls.
// Bodies are not logged; generation payloads carry user content.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		zap.L().Warn("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("outbound request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("status", resp.Status),
		zap.Duration("duration", duration))

	return resp, nil
}

// NewHTTPClient returns a new http.Client with logging enabled
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
