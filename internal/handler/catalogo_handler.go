package handlers

import (
	"log"
	"net/http"
)

func (h *Handlers) VerTalles(w http.ResponseWriter, r *http.Request) {
	talles, err := h.CatalogoRepo.GetTalles(r.Context())
	if err != nil {
		log.Printf("error al obtener talles: %v", err)
		WriteError(w, "Error al obtener talles", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, talles, http.StatusOK)
}

func (h *Handlers) VerCategorias(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.CatalogoRepo.GetCategorias(r.Context())
	if err != nil {
		log.Printf("error al obtener categorias: %v", err)
		WriteError(w, "Error al obtener categorias", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, categorias, http.StatusOK)
}

func (h *Handlers) VerTiposPublicacion(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.CatalogoRepo.GetTiposPublicacion(r.Context())
	if err != nil {
		log.Printf("error al obtener tipos de publicacion: %v", err)
		WriteError(w, "Error al obtener tipos de publicacion", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, tipos, http.StatusOK)
}
