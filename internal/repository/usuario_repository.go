package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
)

type usuarioRepository struct {
	db *sqlx.DB
}

func NewUsuarioRepository(db *sqlx.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

const columnasPerfil = `id_usuario, nombre, apellido, username, email, nacimiento, telefono, ubicacion, avatar, bio, fecha_creacion`

func (r *usuarioRepository) CreateUsuario(ctx context.Context, usuario *models.Usuario, password string, cost int) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("error al hashear la contraseña: %w", err)
	}

	usuario.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO usuarios (nombre, apellido, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario
	`

	err = r.db.GetContext(ctx, &usuario.IDUsuario, query,
		usuario.Nombre, usuario.Apellido, usuario.Username, usuario.Email, usuario.PasswordHash)
	if err != nil {
		if esViolacionUnica(err, "usuarios_email_key") {
			return ErrEmailDuplicado
		}
		if esViolacionUnica(err, "usuarios_username_key") {
			return ErrUsernameDuplicado
		}
		return fmt.Errorf("error al registrar usuario: %w", err)
	}

	return nil
}

func (r *usuarioRepository) GetUsuarios(ctx context.Context) ([]models.Usuario, error) {
	query := `SELECT ` + columnasPerfil + ` FROM usuarios ORDER BY id_usuario`

	var usuarios []models.Usuario
	err := r.db.SelectContext(ctx, &usuarios, query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener usuarios: %w", err)
	}

	return usuarios, nil
}

func (r *usuarioRepository) GetUsuarioByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var usuario models.Usuario

	query := `SELECT ` + columnasPerfil + ` FROM usuarios WHERE id_usuario = $1`

	err := r.db.GetContext(ctx, &usuario, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("error al obtener el usuario: %w", err)
	}

	return &usuario, nil
}

func (r *usuarioRepository) GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario

	query := `SELECT ` + columnasPerfil + `, password_hash FROM usuarios WHERE email = $1`

	err := r.db.GetContext(ctx, &usuario, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("error al obtener el usuario por email: %w", err)
	}

	return &usuario, nil
}

func (r *usuarioRepository) GetUsuarioByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	var usuario models.Usuario

	query := `SELECT ` + columnasPerfil + ` FROM usuarios WHERE username = $1`

	err := r.db.GetContext(ctx, &usuario, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("error al obtener el usuario por username: %w", err)
	}

	return &usuario, nil
}

func (r *usuarioRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Usuario, error) {
	usuario, err := r.GetUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUsuarioNoEncontrado) {
			// mismo error para mail inexistente y contraseña incorrecta
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}

	return usuario, nil
}

func (r *usuarioRepository) UpdatePerfil(ctx context.Context, id int64, cambios *PerfilUpdate) error {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	agregar := func(columna string, valor interface{}) {
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", columna, len(args)))
	}

	if cambios.Bio != nil {
		agregar("bio", *cambios.Bio)
	}
	if cambios.Nacimiento != nil {
		agregar("nacimiento", *cambios.Nacimiento)
	}
	if cambios.Telefono != nil {
		agregar("telefono", *cambios.Telefono)
	}
	if cambios.Ubicacion != nil {
		agregar("ubicacion", *cambios.Ubicacion)
	}
	if cambios.Avatar != nil {
		agregar("avatar", *cambios.Avatar)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE usuarios SET %s WHERE id_usuario = $%d", strings.Join(sets, ", "), len(args))

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al actualizar el usuario: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error al verificar las filas actualizadas: %w", err)
	}

	if rowsAffected == 0 {
		tx.Rollback()
		return ErrUsuarioNoEncontrado
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	return nil
}
