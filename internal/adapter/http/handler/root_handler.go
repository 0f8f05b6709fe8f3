package handler

import (
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
)

const (
	apiName    = "FinTrack AI Backend API"
	apiVersion = "1.0.0"
)

// Root announces the API name and version.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.RootResponse{Message: apiName, Version: apiVersion})
}
