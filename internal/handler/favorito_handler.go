package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/middleware"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

type GuardarPublicacionRequest struct {
	IDPublicacion int64 `json:"id_publicacion"`
}

func (h *Handlers) GuardarPublicacion(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	var req GuardarPublicacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	if req.IDPublicacion == 0 {
		WriteError(w, "ID de publicación es requerido", http.StatusBadRequest)
		return
	}

	if err := h.FavoritoService.Guardar(r.Context(), idUsuario, req.IDPublicacion); err != nil {
		switch {
		case errors.Is(err, repository.ErrFavoritoDuplicado):
			WriteError(w, "La publicación ya está guardada", http.StatusConflict)
		case errors.Is(err, repository.ErrPublicacionNoEncontrada):
			WriteError(w, "Publicación no encontrada", http.StatusNotFound)
		default:
			log.Printf("error al guardar publicación: %v", err)
			WriteError(w, "Error al guardar publicación", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Publicación guardada correctamente"}, http.StatusCreated)
}

func (h *Handlers) BorrarPublicacionGuardada(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	id, err := idDeRuta(r, "id_publicacion")
	if err != nil {
		WriteError(w, "ID de publicación es requerido", http.StatusBadRequest)
		return
	}

	// borrar algo que no estaba guardado también es éxito
	if err := h.FavoritoService.Borrar(r.Context(), idUsuario, id); err != nil {
		log.Printf("error al eliminar de guardados: %v", err)
		WriteError(w, "Error al eliminar de guardados", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Publicación eliminada de guardados"}, http.StatusOK)
}

func (h *Handlers) EstadoFavorito(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	id, err := idDeRuta(r, "id_publicacion")
	if err != nil {
		WriteError(w, "ID de publicación es requerido", http.StatusBadRequest)
		return
	}

	esFavorito, err := h.FavoritoService.EsFavorito(r.Context(), idUsuario, id)
	if err != nil {
		log.Printf("error al consultar el estado de favorito: %v", err)
		WriteError(w, "Error al consultar el estado", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]bool{"es_favorito": esFavorito}, http.StatusOK)
}

func (h *Handlers) VerGuardadas(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	publicaciones, err := h.FavoritoService.Guardadas(r.Context(), idUsuario)
	if err != nil {
		log.Printf("error al obtener las publicaciones guardadas: %v", err)
		WriteError(w, "Error al obtener las publicaciones guardadas", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, publicaciones, http.StatusOK)
}
