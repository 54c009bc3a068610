// Package http exposes the service as a JSON API.
package http

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/matryer/way"

	"github.com/hicampus/hicampus/metrics"
	"github.com/hicampus/hicampus/service"
)

type handler struct {
	svc     *service.Service
	logger  log.Logger
	metrics *metrics.Metrics
}

// New builds the API router. Everything but /metrics lives under /api.
func New(svc *service.Service, logger log.Logger, m *metrics.Metrics) http.Handler {
	h := &handler{
		svc:     svc,
		logger:  logger,
		metrics: m,
	}

	api := way.NewRouter()
	api.NotFound = http.HandlerFunc(h.notFound)

	h.handle(api, "GET", "/health", h.health)

	h.handle(api, "POST", "/auth/register", h.register)
	h.handle(api, "POST", "/auth/login", h.login)
	h.handle(api, "GET", "/auth/me", h.me)

	h.handle(api, "POST", "/match_requests", h.createMatchRequest)
	h.handle(api, "GET", "/match_requests", h.matchRequests)
	h.handle(api, "GET", "/match_requests/:request_id", h.matchRequest)
	h.handle(api, "GET", "/match_requests/:request_id/find_helpers", h.findHelpers)
	h.handle(api, "POST", "/match_requests/:request_id/offer", h.offerMatch)
	h.handle(api, "POST", "/match_requests/:request_id/accept", h.acceptMatch)
	h.handle(api, "POST", "/match_requests/:request_id/cancel", h.cancelMatchRequest)
	h.handle(api, "POST", "/match_requests/:request_id/reject", h.rejectMatchRequest)

	h.handle(api, "GET", "/conversations", h.conversations)
	h.handle(api, "GET", "/conversations/:conversation_id/messages", h.messages)
	h.handle(api, "POST", "/conversations/:conversation_id/messages", h.sendMessage)

	h.handle(api, "GET", "/boards/:board_id/posts", h.posts)
	h.handle(api, "POST", "/boards/:board_id/posts", h.createPost)

	r := way.NewRouter()
	r.Handle("GET", "/metrics", m.Handler())
	r.Handle("*", "/api...", http.StripPrefix("/api", h.withAuth(api)))

	return h.withRequestLog(r)
}

// handle registers fn instrumented under its route pattern,
// so metrics do not explode with one series per id.
func (h *handler) handle(router *way.Router, method, pattern string, fn http.HandlerFunc) {
	router.Handle(method, pattern, h.withMetrics(method, "/api"+pattern, fn))
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondErr(w, errRouteNotFound)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health(r.Context()); err != nil {
		_ = level.Error(h.logger).Log("msg", "health check failed", "err", err)
		h.respondErr(w, errServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
