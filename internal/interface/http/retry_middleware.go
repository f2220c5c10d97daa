package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/yanqian/solar-calculator/internal/infra/config"
	"github.com/yanqian/solar-calculator/pkg/metrics"
)

const retryBodyLimit = 1 << 20 // 1 MiB

var errBodyTooLarge = errors.New("request body exceeds retry limit")

// withRetry replays idempotent API calls that fail with a 5xx, buffering the
// response so only the final attempt reaches the client.
func withRetry(handler http.Handler, cfg config.RetryConfig, logger *slog.Logger) http.Handler {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return handler
	}
	exclusions := make(map[string]struct{}, len(cfg.Exclude))
	for _, path := range cfg.Exclude {
		exclusions[path] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, skip := exclusions[r.URL.Path]; skip || !retryableMethod(r.Method) {
			handler.ServeHTTP(w, r)
			return
		}
		bodyBytes, err := readRequestBody(r)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			http.Error(w, err.Error(), status)
			return
		}

		for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
			if attempt > 1 && !waitBackoff(r, cfg.BaseBackoff, attempt) {
				http.Error(w, "request cancelled", http.StatusServiceUnavailable)
				return
			}

			attemptResp := newBufferedResponse(w)
			reqCopy := r.Clone(r.Context())
			reqCopy.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			reqCopy.ContentLength = int64(len(bodyBytes))

			handler.ServeHTTP(attemptResp, reqCopy)
			if !attemptResp.retryable() || attempt == cfg.MaxAttempts {
				attemptResp.flush()
				return
			}

			metrics.HTTPRetries.WithLabelValues(r.URL.Path).Inc()
			logger.Warn("transient failure, retrying request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", attemptResp.statusCode(),
				"attempt", attempt,
			)
		}
	})
}

// waitBackoff sleeps base*2^(attempt-2) and reports false if the client went away first.
func waitBackoff(r *http.Request, base time.Duration, attempt int) bool {
	delay := base * time.Duration(1<<(attempt-2))
	if delay <= 0 {
		return r.Context().Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-r.Context().Done():
		return false
	case <-timer.C:
		return true
	}
}

// Estimates are pure computations, so POST is replayed alongside GET.
func retryableMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodPost
}

func readRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	reader := io.LimitReader(r.Body, retryBodyLimit+1)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(data) > retryBodyLimit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

// bufferedResponse holds one attempt's response until it is known to be final.
type bufferedResponse struct {
	dst    http.ResponseWriter
	header http.Header
	body   bytes.Buffer
	status int
}

func newBufferedResponse(dst http.ResponseWriter) *bufferedResponse {
	return &bufferedResponse{dst: dst, header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) Flush() {}

func (b *bufferedResponse) statusCode() int {
	if b.status == 0 {
		return http.StatusOK
	}
	return b.status
}

// Only server faults are retried; 501 never changes between attempts.
func (b *bufferedResponse) retryable() bool {
	code := b.statusCode()
	return code >= http.StatusInternalServerError && code != http.StatusNotImplemented
}

// flush copies the buffered attempt onto the real writer.
func (b *bufferedResponse) flush() {
	dst := b.dst.Header()
	clear(dst)
	for k, v := range b.header.Clone() {
		dst[k] = v
	}
	b.dst.WriteHeader(b.statusCode())
	if b.body.Len() > 0 {
		_, _ = b.dst.Write(b.body.Bytes())
	}
}
