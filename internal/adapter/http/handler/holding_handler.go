package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// HoldingService defines the behavior needed by HoldingHandler.
type HoldingService interface {
	CreateHolding(ctx context.Context, input usecase.CreateHoldingInput) (*domain.Holding, error)
	ListHoldingsByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error)
	UpdateHolding(ctx context.Context, input usecase.UpdateHoldingInput) (*domain.Holding, error)
	DeleteHolding(ctx context.Context, id string) error
}

// HoldingHandler handles holding-related HTTP requests.
type HoldingHandler struct {
	holdingUC HoldingService
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingUC HoldingService) *HoldingHandler {
	return &HoldingHandler{holdingUC: holdingUC}
}

// Create creates a holding under the account in the URL.
func (h *HoldingHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	holding, err := h.holdingUC.CreateHolding(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		respondDomainError(w, err, "Failed to create holding")
		return
	}

	writeJSON(w, http.StatusCreated, dto.HoldingFromDomain(holding))
}

// ListByAccount lists the holdings of one account as a bare array.
func (h *HoldingHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	holdings, err := h.holdingUC.ListHoldingsByAccount(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, err, "Failed to fetch holdings")
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingsFromDomain(holdings))
}

// Update applies a partial update to a holding.
func (h *HoldingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing holding ID", "")
		return
	}

	var req dto.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	holding, err := h.holdingUC.UpdateHolding(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		respondDomainError(w, err, "Failed to update holding")
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingFromDomain(holding))
}

// Delete removes a holding.
func (h *HoldingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing holding ID", "")
		return
	}

	if err := h.holdingUC.DeleteHolding(r.Context(), id); err != nil {
		respondDomainError(w, err, "Failed to delete holding")
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Holding deleted successfully"})
}
