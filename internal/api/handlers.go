package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/terra-clan/attrition-engine/internal/scoring"
)

//go:embed static/index.html
var indexPage []byte

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Load() {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "service not ready")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}

// Prediction handlers

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			observeRejection(CodeTooLarge)
			respondError(w, http.StatusRequestEntityTooLarge, CodeTooLarge, "request body too large")
			return
		}
		observeRejection(CodeInvalidRequest)
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, "failed to read request body")
		return
	}

	attrs, err := ParseEmployee(body)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			slog.Debug("rejected prediction request",
				"code", reqErr.Code,
				"field", reqErr.Field,
				"error", reqErr.Message,
				"request_id", middleware.GetReqID(r.Context()),
			)
			observeRejection(reqErr.Code)
			respondError(w, http.StatusBadRequest, reqErr.Code, reqErr.Message)
			return
		}
		slog.Error("failed to parse prediction request", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to parse request")
		return
	}

	result := scoring.Predict(attrs)
	observePrediction(result)

	slog.Debug("prediction served",
		"probability", result.Probability,
		"risk_level", result.RiskLevel,
		"factors", len(result.Factors),
		"request_id", middleware.GetReqID(r.Context()),
	)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, scoring.Info())
}
