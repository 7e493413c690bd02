package handlers

import (
	"net/http"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MessageResponse{Message: "Backend de Moda Circular funcionando"}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "La base de datos no responde", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
