package http

import (
	"net/http"

	"github.com/hicampus/hicampus/types"
)

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var in types.Register
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var in types.Login
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Login(r.Context(), in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.LoggedInUser(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, user, http.StatusOK)
}
