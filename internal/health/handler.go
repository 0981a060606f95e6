package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TemplateStore is the single dependency the health endpoint reports on.
type TemplateStore interface {
	Len() int
}

type Handler struct {
	store TemplateStore
}

func NewHandler(store TemplateStore) *Handler {
	return &Handler{store: store}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Checks    map[string]Check `json:"checks"`
	Timestamp time.Time        `json:"timestamp"`
}

// Check represents a single health check
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports whether the template store is loaded
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]Check)
	overallHealthy := true

	storeCheck := h.checkStore()
	checks["template_store"] = storeCheck
	if storeCheck.Status != "healthy" {
		overallHealthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !overallHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Checks:    checks,
		Timestamp: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// checkStore checks that the template store is populated
func (h *Handler) checkStore() Check {
	if h.store == nil {
		return Check{
			Status:  "unhealthy",
			Message: "template store is nil",
		}
	}

	if h.store.Len() == 0 {
		return Check{
			Status:  "unhealthy",
			Message: "template store is empty",
		}
	}

	return Check{
		Status:  "healthy",
		Message: fmt.Sprintf("%d templates loaded", h.store.Len()),
	}
}
