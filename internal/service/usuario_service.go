package service

import (
	"context"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

type UsuarioService interface {
	Listar(ctx context.Context) ([]models.Usuario, error)
	Obtener(ctx context.Context, id int64) (*models.Usuario, error)
	ObtenerPorUsername(ctx context.Context, username string) (*models.Usuario, error)
	ActualizarPerfil(ctx context.Context, id, idSolicitante int64, cambios *repository.PerfilUpdate) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{usuarioRepo: usuarioRepo}
}

func (s *usuarioService) Listar(ctx context.Context) ([]models.Usuario, error) {
	return s.usuarioRepo.GetUsuarios(ctx)
}

func (s *usuarioService) Obtener(ctx context.Context, id int64) (*models.Usuario, error) {
	return s.usuarioRepo.GetUsuarioByID(ctx, id)
}

func (s *usuarioService) ObtenerPorUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return s.usuarioRepo.GetUsuarioByUsername(ctx, username)
}

func (s *usuarioService) ActualizarPerfil(ctx context.Context, id, idSolicitante int64, cambios *repository.PerfilUpdate) error {
	// solo el propio usuario puede tocar su perfil
	if id != idSolicitante {
		return ErrNoAutorizado
	}

	return s.usuarioRepo.UpdatePerfil(ctx, id, cambios)
}
