package handlers

import (
	"encoding/json"
	"net/http"
)

// ModelChecker reports whether the classification model is loaded.
type ModelChecker interface {
	Ready() bool
}

// InfoResponse describes the API for the root endpoint
// swagger:model InfoResponse
type InfoResponse struct {
	// example: Interior Design API
	Message string `json:"message"`

	// example: true
	ModelLoaded bool `json:"model_loaded"`

	// Available endpoints by concern
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`

	// example: true
	ModelLoaded bool `json:"model_loaded"`
}

// NewInfoHandler returns the root endpoint with an endpoint listing.
// @Summary API information
// @Tags info
// @Produce json
// @Success 200 {object} handlers.InfoResponse "API description"
// @Router / [get]
func NewInfoHandler(model ModelChecker) http.HandlerFunc {
	endpoints := map[string]string{
		"register":  "/api/auth/register",
		"login":     "/api/auth/login",
		"me":        "/api/auth/me",
		"profile":   "/api/profile",
		"predict":   "/predict",
		"classify":  "/api/classify-room",
		"transform": "/api/transform-room",
		"history":   "/history/all",
		"stats":     "/history/stats/summary",
		"swagger":   "/swagger/index.html",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InfoResponse{
			Message:     "Interior Design API",
			ModelLoaded: model.Ready(),
			Endpoints:   endpoints,
		})
	}
}

// NewHealthHandler returns the liveness endpoint.
// @Summary Health check
// @Tags info
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler(model ModelChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:      "healthy",
			ModelLoaded: model.Ready(),
		})
	}
}
