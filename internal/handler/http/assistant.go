package http

import (
	"net/http"

	"github.com/sweetmoments/storefront/internal/service"
	"github.com/sweetmoments/storefront/pkg/validator"
)

// AssistantHandler serves the sweet assistant endpoint.
type AssistantHandler struct {
	recommender *service.RecommendService
}

// NewAssistantHandler creates the assistant handler.
func NewAssistantHandler(recommender *service.RecommendService) *AssistantHandler {
	return &AssistantHandler{recommender: recommender}
}

type recommendRequest struct {
	Prompt string `json:"prompt" validate:"required,max=500"`
}

type recommendResponse struct {
	Recommendation string `json:"recommendation"`
}

// Recommend handles POST /assistant/recommend.
func (h *AssistantHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validator.Validate(&req); err != nil {
		writeError(w, r, err)
		return
	}

	text, err := h.recommender.Recommend(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{Recommendation: text})
}
