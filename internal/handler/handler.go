package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/database"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
)

type Handlers struct {
	AuthService        service.AuthService
	UsuarioService     service.UsuarioService
	PublicacionService service.PublicacionService
	FavoritoService    service.FavoritoService
	TestimonioService  service.TestimonioService
	CatalogoRepo       repository.CatalogoRepository
	DB                 *database.DB
	Cfg                *config.Config
	Validate           *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:        services.Auth,
		UsuarioService:     services.Usuario,
		PublicacionService: services.Publicacion,
		FavoritoService:    services.Favorito,
		TestimonioService:  services.Testimonio,
		CatalogoRepo:       repo.Catalogo,
		DB:                 db,
		Cfg:                cfg,
		Validate:           validator.New(),
	}
}
