package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse represents the response for the version endpoint
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleVersion reports the deployed version
// @Summary Version
// @Description Returns the service version and environment
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func HandleVersion(version, environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Version: version, Environment: environment})
	}
}
