package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const (
	usuarioIDKey contextKey = "id_usuario"
	emailKey     contextKey = "email"
	nombreKey    contextKey = "nombre"
)

// ConUsuario cuelga la identidad autenticada del contexto; lo usa Auth
// y los tests de handlers.
func ConUsuario(ctx context.Context, id int64, email, nombre string) context.Context {
	ctx = context.WithValue(ctx, usuarioIDKey, id)
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, nombreKey, nombre)
}

// UsuarioDelContexto devuelve el id del usuario autenticado por Auth.
func UsuarioDelContexto(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(usuarioIDKey).(int64)
	return id, ok
}

func NombreDelContexto(ctx context.Context) (string, bool) {
	nombre, ok := ctx.Value(nombreKey).(string)
	return nombre, ok
}

// Auth valida el bearer token y vuelve a buscar al usuario en la base:
// un token firmado de un usuario borrado no sirve.
func Auth(cfg *config.Config, usuarioRepo repository.UsuarioRepository) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				escribirError(w, "Token no proporcionado", http.StatusUnauthorized)
				return
			}

			// formato "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				escribirError(w, "Token no proporcionado", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})
			if err != nil || !token.Valid {
				escribirError(w, "Token inválido o expirado", http.StatusForbidden)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				escribirError(w, "Token inválido o expirado", http.StatusForbidden)
				return
			}

			idClaim, ok := claims["id"].(float64)
			if !ok {
				escribirError(w, "Token inválido o expirado", http.StatusForbidden)
				return
			}

			usuario, err := usuarioRepo.GetUsuarioByID(r.Context(), int64(idClaim))
			if err != nil {
				if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
					escribirError(w, "Usuario no encontrado", http.StatusUnauthorized)
					return
				}
				log.Printf("error al verificar el usuario del token: %v", err)
				escribirError(w, "Error interno del servidor", http.StatusInternalServerError)
				return
			}

			ctx := ConUsuario(r.Context(), usuario.IDUsuario, usuario.Email, usuario.Nombre)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recuperado: %v\n%s", err, debug.Stack())
				escribirError(w, "Error interno del servidor", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

func escribirError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
