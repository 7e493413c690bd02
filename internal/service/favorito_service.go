package service

import (
	"context"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

type FavoritoService interface {
	Guardar(ctx context.Context, idUsuario, idPublicacion int64) error
	Borrar(ctx context.Context, idUsuario, idPublicacion int64) error
	EsFavorito(ctx context.Context, idUsuario, idPublicacion int64) (bool, error)
	Guardadas(ctx context.Context, idUsuario int64) ([]models.PublicacionDetalle, error)
}

type favoritoService struct {
	favoritoRepo repository.FavoritoRepository
}

func NewFavoritoService(favoritoRepo repository.FavoritoRepository) FavoritoService {
	return &favoritoService{favoritoRepo: favoritoRepo}
}

func (s *favoritoService) Guardar(ctx context.Context, idUsuario, idPublicacion int64) error {
	return s.favoritoRepo.Guardar(ctx, idUsuario, idPublicacion)
}

func (s *favoritoService) Borrar(ctx context.Context, idUsuario, idPublicacion int64) error {
	return s.favoritoRepo.Borrar(ctx, idUsuario, idPublicacion)
}

func (s *favoritoService) EsFavorito(ctx context.Context, idUsuario, idPublicacion int64) (bool, error) {
	return s.favoritoRepo.EsFavorito(ctx, idUsuario, idPublicacion)
}

func (s *favoritoService) Guardadas(ctx context.Context, idUsuario int64) ([]models.PublicacionDetalle, error) {
	return s.favoritoRepo.Guardadas(ctx, idUsuario)
}
