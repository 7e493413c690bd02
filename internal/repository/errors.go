package repository

import (
	"errors"

	"github.com/lib/pq"
)

// La unicidad se resuelve en la base: el índice único es la única
// fuente del conflicto y acá se traduce a errores del dominio.
var (
	ErrUsuarioNoEncontrado     = errors.New("usuario no encontrado")
	ErrPublicacionNoEncontrada = errors.New("publicación no encontrada")
	ErrEmailDuplicado          = errors.New("el email ya está registrado")
	ErrUsernameDuplicado       = errors.New("el nombre de usuario ya está en uso")
	ErrFavoritoDuplicado       = errors.New("la publicación ya está guardada")
	ErrCredencialesInvalidas   = errors.New("credenciales inválidas")
)

const (
	codigoViolacionUnica = "23505"
	codigoViolacionFK    = "23503"
)

func esViolacionUnica(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codigoViolacionUnica && pqErr.Constraint == constraint
	}
	return false
}

func esViolacionFK(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codigoViolacionFK
	}
	return false
}
