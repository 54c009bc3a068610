package http

import (
	"net/http"

	"github.com/hicampus/hicampus/types"
)

func (h *handler) conversations(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Conversations(r.Context(), types.ListConversations{})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.ConversationSummary{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) messages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conversationID, err := paramID(ctx, "conversation_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out, err := h.svc.Messages(ctx, types.ListMessages{ConversationID: conversationID})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.Message{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var in types.SendMessage
	if err := decode(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	conversationID, err := paramID(ctx, "conversation_id")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in.ConversationID = conversationID
	out, err := h.svc.SendMessage(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}
