package http

import (
	"net/http"

	"github.com/hicampus/hicampus/types"
)

func (h *handler) createMatchRequest(w http.ResponseWriter, r *http.Request) {
	var in types.CreateMatchRequest
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.CreateMatchRequest(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) matchRequests(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.MatchRequests(r.Context(), types.ListMatchRequests{})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.MatchRequest{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) matchRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.MatchRequest(ctx, types.RetrieveMatchRequest{RequestID: requestID})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) findHelpers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	limit, err := queryUint(r, "limit")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.FindHelpers(ctx, types.FindHelpers{
		RequestID: requestID,
		Limit:     limit,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.UserPreview{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) offerMatch(w http.ResponseWriter, r *http.Request) {
	var in types.OfferMatch
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in.RequestID = requestID
	out, err := h.svc.OfferMatch(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) acceptMatch(w http.ResponseWriter, r *http.Request) {
	var in types.AcceptMatch
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in.RequestID = requestID
	out, err := h.svc.AcceptMatch(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) cancelMatchRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.CancelMatchRequest(ctx, types.CancelMatchRequest{RequestID: requestID})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) rejectMatchRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := paramID(ctx, "request_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.RejectMatchRequest(ctx, types.RejectMatchRequest{RequestID: requestID})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}
