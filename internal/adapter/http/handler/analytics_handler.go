package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

// AnalyticsService defines the behavior needed by AnalyticsHandler.
type AnalyticsService interface {
	SpendingByCategory(ctx context.Context) ([]domain.CategorySpending, error)
	MonthlySpending(ctx context.Context) (decimal.Decimal, error)
	AssetAllocation(ctx context.Context) ([]domain.AllocationSlice, decimal.Decimal, error)
}

// AnalyticsHandler serves the aggregate views.
type AnalyticsHandler struct {
	analyticsUC AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsUC AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// SpendingByCategory returns expense totals keyed by category.
func (h *AnalyticsHandler) SpendingByCategory(w http.ResponseWriter, r *http.Request) {
	spending, err := h.analyticsUC.SpendingByCategory(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to get spending data")
		return
	}

	writeJSON(w, http.StatusOK, dto.SpendingByCategoryFromDomain(spending))
}

// MonthlySpending returns the current month's expense total.
func (h *AnalyticsHandler) MonthlySpending(w http.ResponseWriter, r *http.Request) {
	total, err := h.analyticsUC.MonthlySpending(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to get monthly spending")
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySpendingResponse{Total: total})
}

// AssetAllocation returns account balances grouped by category.
func (h *AnalyticsHandler) AssetAllocation(w http.ResponseWriter, r *http.Request) {
	allocation, total, err := h.analyticsUC.AssetAllocation(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to get asset allocation")
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetAllocationFromDomain(allocation, total))
}
