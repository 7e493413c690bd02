package service

import (
	"errors"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/storage"
)

var (
	ErrNoAutorizado       = errors.New("no autorizado")
	ErrSinImagenes        = errors.New("se requiere al menos una imagen")
	ErrDemasiadasImagenes = errors.New("se superó el máximo de imágenes")
	ErrPrecioRequerido    = errors.New("el precio es obligatorio para publicaciones de venta")
)

type Service struct {
	Auth        AuthService
	Usuario     UsuarioService
	Publicacion PublicacionService
	Favorito    FavoritoService
	Testimonio  TestimonioService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:        NewAuthService(rep.Usuario, cfg),
		Usuario:     NewUsuarioService(rep.Usuario),
		Publicacion: NewPublicacionService(rep.Publicacion, rep.Catalogo, storage, cfg),
		Favorito:    NewFavoritoService(rep.Favorito),
		Testimonio:  NewTestimonioService(rep.Testimonio),
	}
}
