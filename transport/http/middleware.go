package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kit/log/level"

	"github.com/hicampus/hicampus/auth"
	"github.com/hicampus/hicampus/id"
)

const requestIDHeader = "X-Request-Id"

var ctxKeyRequestInfo = struct{ name string }{name: "ctx-key-request-info"}

// requestInfo is filled while the request travels down the chain
// and read back by the request log once it is done.
type requestInfo struct {
	id     string
	userID int64
}

func requestInfoFromContext(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(ctxKeyRequestInfo).(*requestInfo)
	return info
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusRecorder) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (h *handler) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		info := &requestInfo{id: id.FromHeader(r.Header.Get(requestIDHeader))}
		w.Header().Set(requestIDHeader, info.id)

		rec := &statusRecorder{ResponseWriter: w}
		ctx := context.WithValue(r.Context(), ctxKeyRequestInfo, info)
		next.ServeHTTP(rec, r.WithContext(ctx))

		keyvals := []any{
			"request_id", info.id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.code(),
			"took", time.Since(start),
		}
		if info.userID != 0 {
			keyvals = append(keyvals, "user_id", info.userID)
		}

		logger := level.Info(h.logger)
		if rec.code() >= http.StatusInternalServerError {
			logger = level.Warn(h.logger)
		}
		_ = logger.Log(keyvals...)
	})
}

// withAuth resolves a bearer token into the request principal.
// Requests without an Authorization header continue anonymously.
func (h *handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := auth.BearerToken(header)
		if !ok {
			h.respondErr(w, errInvalidAuthHeader)
			return
		}

		ctx := r.Context()
		user, err := h.svc.AuthUserFromToken(ctx, token)
		if err != nil {
			h.respondErr(w, err)
			return
		}

		if info := requestInfoFromContext(ctx); info != nil {
			info.userID = user.ID
		}

		ctx = auth.ContextWithUser(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *handler) withMetrics(method, route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		done := h.metrics.TrackInflight()
		defer done()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next(rec, r)

		h.metrics.ObserveHTTP(method, route, rec.code(), time.Since(start))
	}
}
