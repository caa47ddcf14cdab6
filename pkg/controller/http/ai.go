package http

import (
	"net/http"

	"github.com/postwave/postwave/pkg/usecase"
)

// AIHandler handles the writing assistant endpoints
type AIHandler struct {
	aiUC usecase.AIUseCase
}

// NewAIHandler creates a new assistant handler
func NewAIHandler(aiUC usecase.AIUseCase) *AIHandler {
	return &AIHandler{aiUC: aiUC}
}

// HandleGeneratePost drafts a post for a topic
func (h *AIHandler) HandleGeneratePost(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.aiUC.GeneratePost(r.Context(), viewerID(r.Context()), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// HandleRewritePost rewrites text
func (h *AIHandler) HandleRewritePost(w http.ResponseWriter, r *http.Request) {
	var input usecase.RewriteInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.aiUC.RewritePost(r.Context(), viewerID(r.Context()), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
