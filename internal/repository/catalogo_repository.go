package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

// Catálogos de solo lectura (talles, categorías, tipos de publicación);
// las filas se cargan en la migración.
type catalogoRepository struct {
	db *sqlx.DB
}

func NewCatalogoRepository(db *sqlx.DB) CatalogoRepository {
	return &catalogoRepository{db: db}
}

func (r *catalogoRepository) GetTalles(ctx context.Context) ([]models.Talle, error) {
	var talles []models.Talle

	err := r.db.SelectContext(ctx, &talles, `SELECT id_talle, talle FROM talles ORDER BY id_talle`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener talles: %w", err)
	}

	return talles, nil
}

func (r *catalogoRepository) GetCategorias(ctx context.Context) ([]models.Categoria, error) {
	var categorias []models.Categoria

	err := r.db.SelectContext(ctx, &categorias, `SELECT id_categoria, categoria FROM categorias ORDER BY id_categoria`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener categorias: %w", err)
	}

	return categorias, nil
}

func (r *catalogoRepository) GetTiposPublicacion(ctx context.Context) ([]models.TipoPublicacion, error) {
	var tipos []models.TipoPublicacion

	err := r.db.SelectContext(ctx, &tipos, `SELECT id_tipo_publicacion, tipo_publicacion FROM tipos_publicacion ORDER BY id_tipo_publicacion`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener tipos de publicacion: %w", err)
	}

	return tipos, nil
}

func (r *catalogoRepository) GetTipoPublicacionByID(ctx context.Context, id int64) (*models.TipoPublicacion, error) {
	var tipo models.TipoPublicacion

	err := r.db.GetContext(ctx, &tipo, `SELECT id_tipo_publicacion, tipo_publicacion FROM tipos_publicacion WHERE id_tipo_publicacion = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tipo de publicación %d no encontrado", id)
		}
		return nil, fmt.Errorf("error al obtener el tipo de publicación: %w", err)
	}

	return &tipo, nil
}
