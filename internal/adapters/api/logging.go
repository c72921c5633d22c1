package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoggingTransport logs one line per request at debug level with a generated
// request id. Wrap it around BearerTransport so the logged request is the
// final authenticated form.
type LoggingTransport struct {
	Logger *zap.Logger
	Base   http.RoundTripper
}

var _ http.RoundTripper = (*LoggingTransport)(nil)

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.base().RoundTrip(req)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		t.logger().Debug("http request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	t.logger().Debug("http request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}

func (t *LoggingTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *LoggingTransport) logger() *zap.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return zap.NewNop()
}
