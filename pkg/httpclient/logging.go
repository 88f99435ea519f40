package httpclient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const HeaderRequestID = "X-Request-ID"

type loggingTransport struct {
	next http.RoundTripper
}

// NewLoggingTransport tags every outgoing request with a request id and logs its outcome.
func NewLoggingTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	logger := log.With().Str("request_id", requestID).Logger()
	ctx := logger.WithContext(req.Context())

	// RoundTrippers must not modify the caller's request.
	out := req.Clone(ctx)
	out.Header.Set(HeaderRequestID, requestID)

	resp, err := t.next.RoundTrip(out)

	latency := time.Since(start).Milliseconds()
	if err != nil {
		logger.Error().Err(err).
			Str("method", req.Method).
			Str("endpoint", req.URL.Path).
			Int64("latency", latency).
			Msg("Request failed")
		return nil, err
	}

	logger.Info().
		Str("method", req.Method).
		Str("endpoint", req.URL.Path).
		Int("status", resp.StatusCode).
		Int64("latency", latency).
		Msg("Request processed")

	return resp, nil
}
