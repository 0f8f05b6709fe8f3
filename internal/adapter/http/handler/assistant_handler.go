package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// AssistantService defines the behavior needed by AssistantHandler.
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
	History(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
	ProcessDocument(ctx context.Context, data []byte, filename, contentType string) (domain.ImportResult, error)
	SpendingInsights(ctx context.Context) (string, error)
}

// AssistantHandler handles the AI assistant endpoints.
type AssistantHandler struct {
	assistantUC AssistantService
	metrics     *metrics.Metrics
}

// NewAssistantHandler creates a new AssistantHandler. Metrics may be
// nil in tests.
func NewAssistantHandler(assistantUC AssistantService, m *metrics.Metrics) *AssistantHandler {
	return &AssistantHandler{assistantUC: assistantUC, metrics: m}
}

// Chat handles one assistant message.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	reply, err := h.assistantUC.Chat(r.Context(), req.Message)
	if errors.Is(err, domain.ErrEmptyMessage) {
		writeError(w, http.StatusBadRequest, "Message is required", "")
		return
	}
	if err != nil {
		respondDomainError(w, err, "Failed to process chat message")
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResponse{Response: reply})
}

// History returns the conversation log oldest-first as a bare array.
func (h *AssistantHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)

	messages, err := h.assistantUC.History(r.Context(), limit)
	if err != nil {
		respondDomainError(w, err, "Failed to fetch chat messages")
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatMessagesFromDomain(messages))
}

// Upload accepts a multipart document and runs it through the
// importer. Data-level failures still return 200 with success=false;
// only transport and storage problems produce error statuses.
func (h *AssistantHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded", "")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file uploaded", "")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondDomainError(w, err, "Failed to process uploaded document")
		return
	}

	contentType := header.Header.Get("Content-Type")

	result, err := h.assistantUC.ProcessDocument(r.Context(), data, header.Filename, contentType)
	if err != nil {
		h.observeUpload(contentType, false)
		respondDomainError(w, err, "Failed to process uploaded document")
		return
	}

	h.observeUpload(contentType, result.Success)

	writeJSON(w, http.StatusOK, dto.UploadFromDomain(result))
}

// Insights returns a narrated spending analysis.
func (h *AssistantHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.assistantUC.SpendingInsights(r.Context())
	if err != nil {
		respondDomainError(w, err, "Failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, dto.InsightsResponse{Insights: insights})
}

func (h *AssistantHandler) observeUpload(contentType string, success bool) {
	if h.metrics == nil {
		return
	}

	status := "success"
	if !success {
		status = "failure"
	}

	h.metrics.DocumentsProcessed.WithLabelValues(metricContentType(contentType), status).Inc()
}

// metricContentType folds arbitrary upload content types into a fixed
// label set to keep metric cardinality bounded.
func metricContentType(contentType string) string {
	switch {
	case contentType == "text/csv":
		return "text/csv"
	case contentType == "application/pdf":
		return "application/pdf"
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	default:
		return "other"
	}
}
