package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type publicacionRepository struct {
	db *sqlx.DB
}

func NewPublicacionRepository(db *sqlx.DB) PublicacionRepository {
	return &publicacionRepository{db: db}
}

// proyección del feed: publicación + dueño + textos de catálogo + las
// imágenes agregadas en orden
const selectDetalle = `
		SELECT
			p.id_publicacion,
			p.id_usuario,
			u.nombre AS nombre_usuario,
			u.apellido AS apellido_usuario,
			tp.tipo_publicacion,
			c.categoria,
			t.talle,
			p.titulo,
			p.descripcion,
			p.precio,
			p.estado,
			p.color,
			to_char(p.fecha_publicacion, 'DD/MM/YYYY') AS fecha_publicacion,
			p.activo,
			string_agg(fp.url_imagen, ',' ORDER BY fp.orden) AS imagenes
		FROM publicaciones p
		JOIN usuarios u ON p.id_usuario = u.id_usuario
		JOIN tipos_publicacion tp ON p.id_tipo_publicacion = tp.id_tipo_publicacion
		JOIN categorias c ON p.id_categoria = c.id_categoria
		JOIN talles t ON p.id_talle = t.id_talle
		LEFT JOIN fotos_publicacion fp ON p.id_publicacion = fp.id_publicacion
	`

const groupDetalle = ` GROUP BY p.id_publicacion, u.id_usuario, tp.id_tipo_publicacion, c.id_categoria, t.id_talle`

// columnas editables, en orden fijo para armar el UPDATE
var columnasEditables = []string{
	"id_tipo_publicacion", "id_categoria", "id_talle",
	"titulo", "descripcion", "precio", "estado", "color", "activo",
}

func (r *publicacionRepository) Create(ctx context.Context, pub *models.Publicacion, fotosURLs []string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	query := `
		INSERT INTO publicaciones (id_usuario, id_tipo_publicacion, id_categoria, id_talle, titulo, descripcion, precio, estado, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_publicacion
	`

	err = tx.GetContext(ctx, &pub.IDPublicacion, query,
		pub.IDUsuario,
		pub.IDTipoPublicacion,
		pub.IDCategoria,
		pub.IDTalle,
		pub.Titulo,
		pub.Descripcion,
		pub.Precio,
		pub.Estado,
		pub.Color,
	)
	if err != nil {
		tx.Rollback()
		if esViolacionFK(err) {
			return 0, fmt.Errorf("referencia de catálogo inválida: %w", err)
		}
		return 0, fmt.Errorf("error al crear la publicación: %w", err)
	}

	if err := insertarFotos(ctx, tx, pub.IDPublicacion, fotosURLs, 1); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return pub.IDPublicacion, nil
}

// insertarFotos asigna orden consecutivo desde ordenInicial; la primera
// foto de la publicación (orden 1) queda marcada como principal.
func insertarFotos(ctx context.Context, tx *sqlx.Tx, idPublicacion int64, fotosURLs []string, ordenInicial int) error {
	query := `
		INSERT INTO fotos_publicacion (id_publicacion, url_imagen, orden, es_principal)
		VALUES ($1, $2, $3, $4)
	`

	for i, url := range fotosURLs {
		orden := ordenInicial + i
		_, err := tx.ExecContext(ctx, query, idPublicacion, url, orden, orden == 1)
		if err != nil {
			return fmt.Errorf("error al guardar la foto %d: %w", orden, err)
		}
	}

	return nil
}

func (r *publicacionRepository) GetAll(ctx context.Context) ([]models.PublicacionDetalle, error) {
	query := selectDetalle + `WHERE p.activo = TRUE` + groupDetalle + ` ORDER BY p.fecha_publicacion DESC`

	var publicaciones []models.PublicacionDetalle
	err := r.db.SelectContext(ctx, &publicaciones, query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener publicaciones: %w", err)
	}

	for i := range publicaciones {
		publicaciones[i].Imagenes = separarImagenes(publicaciones[i].ImagenesRaw)
	}

	return publicaciones, nil
}

func (r *publicacionRepository) GetByID(ctx context.Context, id int64) (*models.PublicacionDetalle, error) {
	query := selectDetalle + `WHERE p.activo = TRUE AND p.id_publicacion = $1` + groupDetalle

	var pub models.PublicacionDetalle
	err := r.db.GetContext(ctx, &pub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPublicacionNoEncontrada
		}
		return nil, fmt.Errorf("error al obtener la publicación: %w", err)
	}

	pub.Imagenes = separarImagenes(pub.ImagenesRaw)
	return &pub, nil
}

func (r *publicacionRepository) GetRow(ctx context.Context, id int64) (*models.Publicacion, error) {
	query := `
		SELECT id_publicacion, id_usuario, id_tipo_publicacion, id_categoria, id_talle, titulo, descripcion, precio, estado, color, activo, fecha_publicacion
		FROM publicaciones
		WHERE id_publicacion = $1
	`

	var pub models.Publicacion
	err := r.db.GetContext(ctx, &pub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPublicacionNoEncontrada
		}
		return nil, fmt.Errorf("error al obtener la publicación: %w", err)
	}

	return &pub, nil
}

func (r *publicacionRepository) Update(ctx context.Context, id int64, cambios map[string]interface{}, nuevasFotos []string, reemplazarFotos bool) error {
	if len(cambios) == 0 && len(nuevasFotos) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	if len(cambios) > 0 {
		sets := make([]string, 0, len(cambios))
		args := make([]interface{}, 0, len(cambios)+1)
		for _, columna := range columnasEditables {
			if valor, ok := cambios[columna]; ok {
				args = append(args, valor)
				sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
			}
		}

		args = append(args, id)
		query := fmt.Sprintf("UPDATE publicaciones SET %s WHERE id_publicacion = $%d", strings.Join(sets, ", "), len(args))

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error al actualizar la publicación: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error al verificar las filas actualizadas: %w", err)
		}

		if rowsAffected == 0 {
			tx.Rollback()
			return ErrPublicacionNoEncontrada
		}
	}

	if len(nuevasFotos) > 0 {
		ordenInicial := 1
		if reemplazarFotos {
			if _, err := tx.ExecContext(ctx, `DELETE FROM fotos_publicacion WHERE id_publicacion = $1`, id); err != nil {
				tx.Rollback()
				return fmt.Errorf("error al borrar las fotos anteriores: %w", err)
			}
		} else {
			// se anexan después de la última foto existente
			var maxOrden sql.NullInt64
			if err := tx.GetContext(ctx, &maxOrden, `SELECT MAX(orden) FROM fotos_publicacion WHERE id_publicacion = $1`, id); err != nil {
				tx.Rollback()
				return fmt.Errorf("error al obtener el orden de las fotos: %w", err)
			}
			ordenInicial = int(maxOrden.Int64) + 1
		}

		if err := insertarFotos(ctx, tx, id, nuevasFotos, ordenInicial); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return nil
}

func (r *publicacionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM publicaciones_favoritas WHERE id_publicacion = $1`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al borrar los favoritos de la publicación: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM fotos_publicacion WHERE id_publicacion = $1`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("error al borrar las fotos de la publicación: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM publicaciones WHERE id_publicacion = $1`, id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al eliminar la publicación: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al verificar las filas eliminadas: %w", err)
	}

	if rowsAffected == 0 {
		tx.Rollback()
		return ErrPublicacionNoEncontrada
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return nil
}

func separarImagenes(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}
	return strings.Split(raw.String, ",")
}
