package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

func nuevoRepoPublicaciones(t *testing.T) (PublicacionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewPublicacionRepository(sqlxDB), mock
}

const insertPublicacion = `
		INSERT INTO publicaciones (id_usuario, id_tipo_publicacion, id_categoria, id_talle, titulo, descripcion, precio, estado, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_publicacion
	`

const insertFoto = `
		INSERT INTO fotos_publicacion (id_publicacion, url_imagen, orden, es_principal)
		VALUES ($1, $2, $3, $4)
	`

func publicacionDePrueba() *models.Publicacion {
	descripcion := "Campera de jean casi sin uso"
	precio := 15000.0
	return &models.Publicacion{
		IDUsuario:         3,
		IDTipoPublicacion: 1,
		IDCategoria:       2,
		IDTalle:           4,
		Titulo:            "Campera de jean",
		Descripcion:       &descripcion,
		Precio:            &precio,
		Estado:            "Usado",
		Color:             nil,
	}
}

func TestPublicacionRepository_Create(t *testing.T) {
	repo, mock := nuevoRepoPublicaciones(t)
	ctx := context.Background()

	t.Run("Publicación con tres fotos en orden", func(t *testing.T) {
		pub := publicacionDePrueba()
		fotos := []string{
			"/public/publicaciones_img/a.jpg",
			"/public/publicaciones_img/b.jpg",
			"/public/publicaciones_img/c.jpg",
		}

		mock.ExpectBegin()
		mock.ExpectQuery(insertPublicacion).
			WithArgs(pub.IDUsuario, pub.IDTipoPublicacion, pub.IDCategoria, pub.IDTalle,
				pub.Titulo, pub.Descripcion, pub.Precio, pub.Estado, pub.Color).
			WillReturnRows(sqlmock.NewRows([]string{"id_publicacion"}).AddRow(int64(12)))

		// orden consecutivo desde 1; solo la primera es principal
		mock.ExpectExec(insertFoto).
			WithArgs(int64(12), fotos[0], 1, true).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(12), fotos[1], 2, false).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(12), fotos[2], 3, false).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		id, err := repo.Create(ctx, pub, fotos)

		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falla una foto y se revierte todo", func(t *testing.T) {
		pub := publicacionDePrueba()
		fotos := []string{
			"/public/publicaciones_img/a.jpg",
			"/public/publicaciones_img/b.jpg",
		}

		mock.ExpectBegin()
		mock.ExpectQuery(insertPublicacion).
			WithArgs(pub.IDUsuario, pub.IDTipoPublicacion, pub.IDCategoria, pub.IDTalle,
				pub.Titulo, pub.Descripcion, pub.Precio, pub.Estado, pub.Color).
			WillReturnRows(sqlmock.NewRows([]string{"id_publicacion"}).AddRow(int64(13)))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(13), fotos[0], 1, true).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(13), fotos[1], 2, false).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		id, err := repo.Create(ctx, pub, fotos)

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPublicacionRepository_GetByID(t *testing.T) {
	repo, mock := nuevoRepoPublicaciones(t)
	ctx := context.Background()

	query := selectDetalle + `WHERE p.activo = TRUE AND p.id_publicacion = $1` + groupDetalle

	columnas := []string{
		"id_publicacion", "id_usuario", "nombre_usuario", "apellido_usuario",
		"tipo_publicacion", "categoria", "talle", "titulo", "descripcion",
		"precio", "estado", "color", "fecha_publicacion", "activo", "imagenes",
	}

	t.Run("Detalle con imágenes en orden", func(t *testing.T) {
		rows := sqlmock.NewRows(columnas).AddRow(
			int64(12), int64(3), "Ana", "López",
			"Venta", "Camperas", "M", "Campera de jean", "Casi sin uso",
			15000.0, "Usado", nil, "15/08/2026", true,
			"/public/publicaciones_img/a.jpg,/public/publicaciones_img/b.jpg",
		)

		mock.ExpectQuery(query).WithArgs(int64(12)).WillReturnRows(rows)

		pub, err := repo.GetByID(ctx, 12)

		require.NoError(t, err)
		assert.Equal(t, "Venta", pub.TipoPublicacion)
		assert.Equal(t, "15/08/2026", pub.FechaPublicacion)
		assert.Equal(t, []string{
			"/public/publicaciones_img/a.jpg",
			"/public/publicaciones_img/b.jpg",
		}, pub.Imagenes)
	})

	t.Run("Sin fotos devuelve lista vacía", func(t *testing.T) {
		rows := sqlmock.NewRows(columnas).AddRow(
			int64(14), int64(3), "Ana", "López",
			"Donación", "Remeras", "S", "Remera lisa", nil,
			nil, "Nuevo", nil, "15/08/2026", true,
			nil,
		)

		mock.ExpectQuery(query).WithArgs(int64(14)).WillReturnRows(rows)

		pub, err := repo.GetByID(ctx, 14)

		require.NoError(t, err)
		assert.NotNil(t, pub.Imagenes)
		assert.Empty(t, pub.Imagenes)
	})

	t.Run("Publicación no encontrada", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		pub, err := repo.GetByID(ctx, 99)

		assert.ErrorIs(t, err, ErrPublicacionNoEncontrada)
		assert.Nil(t, pub)
	})
}

func TestPublicacionRepository_Update(t *testing.T) {
	repo, mock := nuevoRepoPublicaciones(t)
	ctx := context.Background()

	t.Run("Solo los campos que cambiaron", func(t *testing.T) {
		cambios := map[string]interface{}{
			"titulo": "Campera de jean azul",
			"precio": 12000.0,
		}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE publicaciones SET titulo = $1, precio = $2 WHERE id_publicacion = $3`).
			WithArgs("Campera de jean azul", 12000.0, int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Update(ctx, 12, cambios, nil, false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fotos nuevas se anexan después de la última", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT MAX(orden) FROM fotos_publicacion WHERE id_publicacion = $1`).
			WithArgs(int64(12)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(2)))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(12), "/public/publicaciones_img/d.jpg", 3, false).
			WillReturnResult(sqlmock.NewResult(4, 1))
		mock.ExpectCommit()

		err := repo.Update(ctx, 12, nil, []string{"/public/publicaciones_img/d.jpg"}, false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reemplazo borra las fotos anteriores", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM fotos_publicacion WHERE id_publicacion = $1`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertFoto).
			WithArgs(int64(12), "/public/publicaciones_img/e.jpg", 1, true).
			WillReturnResult(sqlmock.NewResult(5, 1))
		mock.ExpectCommit()

		err := repo.Update(ctx, 12, nil, []string{"/public/publicaciones_img/e.jpg"}, true)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Publicación no encontrada", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE publicaciones SET titulo = $1 WHERE id_publicacion = $2`).
			WithArgs("Otro título", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Update(ctx, 99, map[string]interface{}{"titulo": "Otro título"}, nil, false)

		assert.ErrorIs(t, err, ErrPublicacionNoEncontrada)
	})

	t.Run("Sin cambios ni fotos no toca la base", func(t *testing.T) {
		err := repo.Update(ctx, 12, nil, nil, false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPublicacionRepository_Delete(t *testing.T) {
	repo, mock := nuevoRepoPublicaciones(t)
	ctx := context.Background()

	t.Run("Borra favoritos, fotos y publicación en una transacción", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM publicaciones_favoritas WHERE id_publicacion = $1`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM fotos_publicacion WHERE id_publicacion = $1`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM publicaciones WHERE id_publicacion = $1`).
			WithArgs(int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 12)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Publicación no encontrada", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM publicaciones_favoritas WHERE id_publicacion = $1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM fotos_publicacion WHERE id_publicacion = $1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM publicaciones WHERE id_publicacion = $1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 99)

		assert.ErrorIs(t, err, ErrPublicacionNoEncontrada)
	})
}
