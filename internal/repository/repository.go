package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type UsuarioRepository interface {
	CreateUsuario(ctx context.Context, usuario *models.Usuario, password string, cost int) error
	GetUsuarios(ctx context.Context) ([]models.Usuario, error)
	GetUsuarioByID(ctx context.Context, id int64) (*models.Usuario, error)
	GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error)
	GetUsuarioByUsername(ctx context.Context, username string) (*models.Usuario, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Usuario, error)
	UpdatePerfil(ctx context.Context, id int64, cambios *PerfilUpdate) error
}

// PerfilUpdate lleva solo los campos presentes en el PATCH; los nil no
// tocan la fila.
type PerfilUpdate struct {
	Bio        *string
	Nacimiento *string
	Telefono   *string
	Ubicacion  *string
	Avatar     *string
}

type PublicacionRepository interface {
	Create(ctx context.Context, pub *models.Publicacion, fotosURLs []string) (int64, error)
	GetAll(ctx context.Context) ([]models.PublicacionDetalle, error)
	GetByID(ctx context.Context, id int64) (*models.PublicacionDetalle, error)
	GetRow(ctx context.Context, id int64) (*models.Publicacion, error)
	Update(ctx context.Context, id int64, cambios map[string]interface{}, nuevasFotos []string, reemplazarFotos bool) error
	Delete(ctx context.Context, id int64) error
}

type FavoritoRepository interface {
	Guardar(ctx context.Context, idUsuario, idPublicacion int64) error
	Borrar(ctx context.Context, idUsuario, idPublicacion int64) error
	EsFavorito(ctx context.Context, idUsuario, idPublicacion int64) (bool, error)
	Guardadas(ctx context.Context, idUsuario int64) ([]models.PublicacionDetalle, error)
}

type CatalogoRepository interface {
	GetTalles(ctx context.Context) ([]models.Talle, error)
	GetCategorias(ctx context.Context) ([]models.Categoria, error)
	GetTiposPublicacion(ctx context.Context) ([]models.TipoPublicacion, error)
	GetTipoPublicacionByID(ctx context.Context, id int64) (*models.TipoPublicacion, error)
}

type TestimonioRepository interface {
	Create(ctx context.Context, t *models.Testimonio) error
	GetAleatorios(ctx context.Context, limit int) ([]models.Testimonio, error)
}

type Repository struct {
	Usuario     UsuarioRepository
	Publicacion PublicacionRepository
	Favorito    FavoritoRepository
	Catalogo    CatalogoRepository
	Testimonio  TestimonioRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Usuario:     NewUsuarioRepository(db),
		Publicacion: NewPublicacionRepository(db),
		Favorito:    NewFavoritoRepository(db),
		Catalogo:    NewCatalogoRepository(db),
		Testimonio:  NewTestimonioRepository(db),
	}
}
