package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
)

type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UsuarioResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Faltan datos obligatorios o son inválidos", http.StatusBadRequest)
		return
	}

	serviceReq := service.RegisterRequest{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	_, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailDuplicado):
			WriteError(w, "El email ya está registrado", http.StatusBadRequest)
		case errors.Is(err, repository.ErrUsernameDuplicado):
			WriteError(w, "El nombre de usuario ya está en uso", http.StatusBadRequest)
		default:
			log.Printf("error al registrar usuario: %v", err)
			WriteError(w, "Error al registrar usuario", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]string{"token": token}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Formato de solicitud inválido", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Faltan datos obligatorios o son inválidos", http.StatusBadRequest)
		return
	}

	usuario, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrCredencialesInvalidas) {
			// mismo mensaje para mail inexistente y contraseña incorrecta
			WriteError(w, "Credenciales inválidas", http.StatusUnauthorized)
			return
		}
		log.Printf("error al iniciar sesión: %v", err)
		WriteError(w, "Error al iniciar sesión", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"token": token,
		"user": UsuarioResponse{
			ID:     usuario.IDUsuario,
			Email:  usuario.Email,
			Nombre: usuario.Nombre,
		},
	}, http.StatusOK)
}
