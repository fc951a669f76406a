package http

import (
	"encoding/json"
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

// Handle processes GET /healthz requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
