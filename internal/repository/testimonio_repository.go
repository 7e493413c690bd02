package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type testimonioRepository struct {
	db *sqlx.DB
}

func NewTestimonioRepository(db *sqlx.DB) TestimonioRepository {
	return &testimonioRepository{db: db}
}

func (r *testimonioRepository) Create(ctx context.Context, t *models.Testimonio) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	query := `
		INSERT INTO testimonios (nombre_testimonio, mensaje_testimonio, cantidad_estrellas)
		VALUES ($1, $2, $3)
		RETURNING id_testimonio
	`

	err = tx.GetContext(ctx, &t.IDTestimonio, query, t.NombreTestimonio, t.MensajeTestimonio, t.CantidadEstrellas)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al cargar el testimonio: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return nil
}

// GetAleatorios devuelve hasta limit testimonios al azar para la landing.
func (r *testimonioRepository) GetAleatorios(ctx context.Context, limit int) ([]models.Testimonio, error) {
	query := `
		SELECT id_testimonio, nombre_testimonio, mensaje_testimonio, cantidad_estrellas, fecha_creacion
		FROM testimonios
		ORDER BY RANDOM()
		LIMIT $1
	`

	var testimonios []models.Testimonio
	err := r.db.SelectContext(ctx, &testimonios, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error al obtener los testimonios: %w", err)
	}

	return testimonios, nil
}
