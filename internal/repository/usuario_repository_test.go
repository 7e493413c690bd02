package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

func nuevoRepoUsuarios(t *testing.T) (UsuarioRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewUsuarioRepository(sqlxDB), mock
}

func filasPerfil(u *models.Usuario) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id_usuario", "nombre", "apellido", "username", "email",
		"nacimiento", "telefono", "ubicacion", "avatar", "bio", "fecha_creacion",
	}).AddRow(
		u.IDUsuario, u.Nombre, u.Apellido, u.Username, u.Email,
		nil, nil, nil, nil, nil, u.FechaCreacion,
	)
}

func TestUsuarioRepository_CreateUsuario(t *testing.T) {
	repo, mock := nuevoRepoUsuarios(t)
	ctx := context.Background()

	insert := `
		INSERT INTO usuarios (nombre, apellido, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario
	`

	t.Run("Registro exitoso", func(t *testing.T) {
		usuario := &models.Usuario{
			Nombre:   "Ana",
			Apellido: "López",
			Username: "analopez",
			Email:    "ana@example.com",
		}

		mock.ExpectQuery(insert).
			WithArgs("Ana", "López", "analopez", "ana@example.com", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id_usuario"}).AddRow(int64(7)))

		err := repo.CreateUsuario(ctx, usuario, "secreta123", bcrypt.MinCost)

		require.NoError(t, err)
		assert.Equal(t, int64(7), usuario.IDUsuario)
		// la contraseña nunca se guarda en claro
		assert.NotEqual(t, "secreta123", usuario.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte("secreta123")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email duplicado", func(t *testing.T) {
		usuario := &models.Usuario{
			Nombre:   "Ana",
			Apellido: "López",
			Username: "otrousername",
			Email:    "ana@example.com",
		}

		mock.ExpectQuery(insert).
			WithArgs("Ana", "López", "otrousername", "ana@example.com", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "usuarios_email_key"})

		err := repo.CreateUsuario(ctx, usuario, "secreta123", bcrypt.MinCost)

		assert.ErrorIs(t, err, ErrEmailDuplicado)
	})

	t.Run("Username duplicado", func(t *testing.T) {
		usuario := &models.Usuario{
			Nombre:   "Beto",
			Apellido: "Gómez",
			Username: "analopez",
			Email:    "beto@example.com",
		}

		mock.ExpectQuery(insert).
			WithArgs("Beto", "Gómez", "analopez", "beto@example.com", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "usuarios_username_key"})

		err := repo.CreateUsuario(ctx, usuario, "secreta123", bcrypt.MinCost)

		assert.ErrorIs(t, err, ErrUsernameDuplicado)
	})
}

func TestUsuarioRepository_GetUsuarioByID(t *testing.T) {
	repo, mock := nuevoRepoUsuarios(t)
	ctx := context.Background()

	query := `SELECT id_usuario, nombre, apellido, username, email, nacimiento, telefono, ubicacion, avatar, bio, fecha_creacion FROM usuarios WHERE id_usuario = $1`

	t.Run("Usuario encontrado", func(t *testing.T) {
		esperado := &models.Usuario{
			IDUsuario:     3,
			Nombre:        "Ana",
			Apellido:      "López",
			Username:      "analopez",
			Email:         "ana@example.com",
			FechaCreacion: time.Now(),
		}

		mock.ExpectQuery(query).
			WithArgs(int64(3)).
			WillReturnRows(filasPerfil(esperado))

		usuario, err := repo.GetUsuarioByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, esperado.Email, usuario.Email)
		assert.Equal(t, esperado.Username, usuario.Username)
		assert.Empty(t, usuario.PasswordHash)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Usuario no encontrado", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		usuario, err := repo.GetUsuarioByID(ctx, 99)

		assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
		assert.Nil(t, usuario)
	})

	t.Run("Error de base de datos", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(3)).
			WillReturnError(errors.New("connection refused"))

		usuario, err := repo.GetUsuarioByID(ctx, 3)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUsuarioNoEncontrado)
		assert.Nil(t, usuario)
	})
}

func TestUsuarioRepository_VerifyPassword(t *testing.T) {
	repo, mock := nuevoRepoUsuarios(t)
	ctx := context.Background()

	query := `SELECT id_usuario, nombre, apellido, username, email, nacimiento, telefono, ubicacion, avatar, bio, fecha_creacion, password_hash FROM usuarios WHERE email = $1`

	email := "ana@example.com"
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	filasConHash := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id_usuario", "nombre", "apellido", "username", "email",
			"nacimiento", "telefono", "ubicacion", "avatar", "bio", "fecha_creacion",
			"password_hash",
		}).AddRow(
			int64(3), "Ana", "López", "analopez", email,
			nil, nil, nil, nil, nil, time.Now(),
			string(hash),
		)
	}

	t.Run("Credenciales correctas", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(email).WillReturnRows(filasConHash())

		usuario, err := repo.VerifyPassword(ctx, email, "secreta123")

		require.NoError(t, err)
		assert.Equal(t, email, usuario.Email)
		assert.Equal(t, int64(3), usuario.IDUsuario)
	})

	t.Run("Contraseña incorrecta", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(email).WillReturnRows(filasConHash())

		usuario, err := repo.VerifyPassword(ctx, email, "otraclave")

		assert.ErrorIs(t, err, ErrCredencialesInvalidas)
		assert.Nil(t, usuario)
	})

	t.Run("Email inexistente devuelve el mismo error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("nadie@example.com").WillReturnError(sql.ErrNoRows)

		usuario, err := repo.VerifyPassword(ctx, "nadie@example.com", "secreta123")

		// no se distingue email inexistente de contraseña incorrecta
		assert.ErrorIs(t, err, ErrCredencialesInvalidas)
		assert.Nil(t, usuario)
	})
}

func TestUsuarioRepository_UpdatePerfil(t *testing.T) {
	repo, mock := nuevoRepoUsuarios(t)
	ctx := context.Background()

	bio := "Vendo lo que ya no uso"
	ubicacion := "Rosario"

	t.Run("Actualización parcial", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE usuarios SET bio = $1, ubicacion = $2 WHERE id_usuario = $3`).
			WithArgs(bio, ubicacion, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdatePerfil(ctx, 3, &PerfilUpdate{Bio: &bio, Ubicacion: &ubicacion})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Usuario no encontrado", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE usuarios SET bio = $1 WHERE id_usuario = $2`).
			WithArgs(bio, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdatePerfil(ctx, 99, &PerfilUpdate{Bio: &bio})

		assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
	})

	t.Run("Sin cambios no toca la base", func(t *testing.T) {
		err := repo.UpdatePerfil(ctx, 3, &PerfilUpdate{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
