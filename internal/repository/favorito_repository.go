package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type favoritoRepository struct {
	db *sqlx.DB
}

func NewFavoritoRepository(db *sqlx.DB) FavoritoRepository {
	return &favoritoRepository{db: db}
}

func (r *favoritoRepository) Guardar(ctx context.Context, idUsuario, idPublicacion int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	query := `
		INSERT INTO publicaciones_favoritas (id_usuario, id_publicacion, fecha_favorito)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
	`

	_, err = tx.ExecContext(ctx, query, idUsuario, idPublicacion)
	if err != nil {
		tx.Rollback()
		if esViolacionUnica(err, "publicaciones_favoritas_pkey") {
			return ErrFavoritoDuplicado
		}
		if esViolacionFK(err) {
			return ErrPublicacionNoEncontrada
		}
		return fmt.Errorf("error al guardar la publicación: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return nil
}

func (r *favoritoRepository) Borrar(ctx context.Context, idUsuario, idPublicacion int64) error {
	query := `DELETE FROM publicaciones_favoritas WHERE id_usuario = $1 AND id_publicacion = $2`

	// el borrado es idempotente: sin fila que borrar también es éxito
	_, err := r.db.ExecContext(ctx, query, idUsuario, idPublicacion)
	if err != nil {
		return fmt.Errorf("error al eliminar de guardados: %w", err)
	}

	return nil
}

func (r *favoritoRepository) EsFavorito(ctx context.Context, idUsuario, idPublicacion int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM publicaciones_favoritas WHERE id_usuario = $1 AND id_publicacion = $2)`

	var existe bool
	err := r.db.GetContext(ctx, &existe, query, idUsuario, idPublicacion)
	if err != nil {
		return false, fmt.Errorf("error al consultar el estado de favorito: %w", err)
	}

	return existe, nil
}

func (r *favoritoRepository) Guardadas(ctx context.Context, idUsuario int64) ([]models.PublicacionDetalle, error) {
	query := selectDetalle + `JOIN publicaciones_favoritas pf ON p.id_publicacion = pf.id_publicacion
		WHERE p.activo = TRUE AND pf.id_usuario = $1` + groupDetalle + `, pf.fecha_favorito ORDER BY pf.fecha_favorito DESC`

	var publicaciones []models.PublicacionDetalle
	err := r.db.SelectContext(ctx, &publicaciones, query, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("error al obtener las publicaciones guardadas: %w", err)
	}

	for i := range publicaciones {
		publicaciones[i].Imagenes = separarImagenes(publicaciones[i].ImagenesRaw)
		publicaciones[i].EsFavorito = true
	}

	return publicaciones, nil
}
