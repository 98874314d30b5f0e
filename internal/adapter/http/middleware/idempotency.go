package middleware

import (
	"bytes"
	"context"
	"errors"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/payoffsim/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// ReplayHeader marks a response served from the replay store.
	ReplayHeader = "X-Idempotency-Replay"
	// MaxIdempotentBody caps the body buffered for fingerprinting.
	MaxIdempotentBody = 1 << 20
)

// IdempotencyMiddleware replays the stored response of a POST that repeats an Idempotency-Key,
// so a retried simulation returns the original run instead of a new run ID.
type IdempotencyMiddleware struct {
	store   usecase.ReplayStore
	ttl     time.Duration
	maxBody int64
	logger  zerolog.Logger
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store usecase.ReplayStore, ttl time.Duration, logger zerolog.Logger) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store, ttl: ttl, maxBody: MaxIdempotentBody, logger: logger}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(IdempotencyKeyHeader)
		if r.Method != http.MethodPost || key == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, m.maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := sha256.Sum256(body)
		fingerprint := hex.EncodeToString(sum[:])

		existing, err := m.store.Reserve(r.Context(), key, usecase.ReplayEntry{Fingerprint: fingerprint}, m.ttl)
		if err != nil {
			m.logger.Error().Err(err).Str("key", key).Msg("idempotency check failed")
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if existing != nil {
			switch {
			case existing.Fingerprint != fingerprint:
				http.Error(w, "idempotency key reused with a different request", http.StatusUnprocessableEntity)
			case existing.Pending:
				http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
			default:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set(ReplayHeader, "true")
				w.WriteHeader(existing.Status)
				w.Write(existing.Body)
			}
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// The outcome must be recorded even if the client has gone away.
		ctx := context.WithoutCancel(r.Context())
		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			err = m.store.Save(ctx, key, usecase.ReplayEntry{
				Fingerprint: fingerprint,
				Status:      recorder.statusCode,
				Body:        recorder.body.Bytes(),
			}, m.ttl)
		} else {
			err = m.store.Release(ctx, key)
		}
		if err != nil {
			m.logger.Warn().Err(err).Str("key", key).Msg("failed to update idempotency entry")
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter

	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
