package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type CrearTestimonioRequest struct {
	NombreTestimonio  string `json:"nombre_testimonio" validate:"required"`
	MensajeTestimonio string `json:"mensaje_testimonio" validate:"required"`
	CantidadEstrellas int    `json:"cantidad_estrellas" validate:"required,min=1,max=5"`
}

func (h *Handlers) VerTestimonios(w http.ResponseWriter, r *http.Request) {
	testimonios, err := h.TestimonioService.Listar(r.Context())
	if err != nil {
		log.Printf("error al obtener los testimonios: %v", err)
		WriteError(w, "Error al obtener los testimonios", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, testimonios, http.StatusOK)
}

func (h *Handlers) CrearTestimonio(w http.ResponseWriter, r *http.Request) {
	var req CrearTestimonioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Faltan campos obligatorios", http.StatusBadRequest)
		return
	}

	testimonio := &models.Testimonio{
		NombreTestimonio:  req.NombreTestimonio,
		MensajeTestimonio: req.MensajeTestimonio,
		CantidadEstrellas: req.CantidadEstrellas,
	}

	if err := h.TestimonioService.Crear(r.Context(), testimonio); err != nil {
		log.Printf("error cargando el testimonio: %v", err)
		WriteError(w, "Error cargando el testimonio", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Testimonio cargado con éxito"}, http.StatusCreated)
}
