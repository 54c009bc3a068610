package http

import (
	"net/http"

	"github.com/hicampus/hicampus/types"
)

func (h *handler) posts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	boardID, err := paramID(ctx, "board_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Posts(ctx, types.ListPosts{BoardID: boardID})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.Post{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) createPost(w http.ResponseWriter, r *http.Request) {
	var in types.CreatePost
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	boardID, err := paramID(ctx, "board_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in.BoardID = boardID
	out, err := h.svc.CreatePost(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}
