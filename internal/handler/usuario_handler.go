package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/middleware"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
)

type ActualizarPerfilRequest struct {
	Bio        *string `json:"bio"`
	Nacimiento *string `json:"nacimiento"`
	Telefono   *string `json:"telefono"`
	Ubicacion  *string `json:"ubicacion"`
	Avatar     *string `json:"avatar"`
}

func (h *Handlers) VerUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.UsuarioService.Listar(r.Context())
	if err != nil {
		log.Printf("error al obtener usuarios: %v", err)
		WriteError(w, "Error al obtener usuarios", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, usuarios, http.StatusOK)
}

func (h *Handlers) VerUsuarioPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDeRuta(r, "id_usuario")
	if err != nil {
		WriteError(w, "ID de usuario inválido", http.StatusBadRequest)
		return
	}

	usuario, err := h.UsuarioService.Obtener(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			WriteError(w, "Usuario no encontrado", http.StatusNotFound)
			return
		}
		log.Printf("error al obtener el usuario: %v", err)
		WriteError(w, "Error al obtener el usuario", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, usuario, http.StatusOK)
}

func (h *Handlers) VerUsuarioPorUsername(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	usuario, err := h.UsuarioService.ObtenerPorUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			WriteError(w, "Usuario no encontrado", http.StatusNotFound)
			return
		}
		log.Printf("error al obtener el usuario: %v", err)
		WriteError(w, "Error al obtener el usuario", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, usuario, http.StatusOK)
}

func (h *Handlers) ActualizarUsuario(w http.ResponseWriter, r *http.Request) {
	idSolicitante, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	id, err := idDeRuta(r, "id_usuario")
	if err != nil {
		WriteError(w, "ID de usuario inválido", http.StatusBadRequest)
		return
	}

	var req ActualizarPerfilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	cambios := &repository.PerfilUpdate{
		Bio:        req.Bio,
		Nacimiento: req.Nacimiento,
		Telefono:   req.Telefono,
		Ubicacion:  req.Ubicacion,
		Avatar:     req.Avatar,
	}

	if err := h.UsuarioService.ActualizarPerfil(r.Context(), id, idSolicitante, cambios); err != nil {
		switch {
		case errors.Is(err, service.ErrNoAutorizado):
			WriteError(w, "No tenés permisos para actualizar este usuario", http.StatusForbidden)
		case errors.Is(err, repository.ErrUsuarioNoEncontrado):
			WriteError(w, "Usuario no encontrado", http.StatusNotFound)
		default:
			log.Printf("error actualizando el usuario: %v", err)
			WriteError(w, "Error actualizando el usuario", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Usuario actualizado con éxito"}, http.StatusOK)
}
