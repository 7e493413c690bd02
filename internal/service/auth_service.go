package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

type RegisterRequest struct {
	Nombre   string
	Apellido string
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Usuario, string, error)
	Login(ctx context.Context, email, password string) (*models.Usuario, string, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.Usuario, string, error) {
	usuario := &models.Usuario{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Username: req.Username,
		Email:    req.Email,
	}

	// el índice único de la base decide los duplicados
	err := s.usuarioRepo.CreateUsuario(ctx, usuario, req.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generarToken(usuario)
	if err != nil {
		return nil, "", err
	}

	return usuario, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Usuario, string, error) {
	usuario, err := s.usuarioRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generarToken(usuario)
	if err != nil {
		return nil, "", err
	}

	return usuario, token, nil
}

func (s *authService) generarToken(usuario *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"id":    usuario.IDUsuario,
		"email": usuario.Email,
		"exp":   time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("error al firmar el token: %w", err)
	}

	return tokenString, nil
}
