package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.Usuario, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Usuario), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Usuario, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Usuario), args.String(1), args.Error(2)
}

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) Listar(ctx context.Context) ([]models.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Usuario), args.Error(1)
}

func (m *MockUsuarioService) Obtener(ctx context.Context, id int64) (*models.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioService) ObtenerPorUsername(ctx context.Context, username string) (*models.Usuario, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioService) ActualizarPerfil(ctx context.Context, id, idSolicitante int64, cambios *repository.PerfilUpdate) error {
	args := m.Called(ctx, id, idSolicitante, cambios)
	return args.Error(0)
}

type MockPublicacionService struct {
	mock.Mock
}

func (m *MockPublicacionService) Crear(ctx context.Context, req service.CrearPublicacionRequest, fotos []service.FotoSubida) (int64, error) {
	args := m.Called(ctx, req, fotos)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPublicacionService) Listar(ctx context.Context) ([]models.PublicacionDetalle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicacionDetalle), args.Error(1)
}

func (m *MockPublicacionService) Obtener(ctx context.Context, id int64) (*models.PublicacionDetalle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicacionDetalle), args.Error(1)
}

func (m *MockPublicacionService) Editar(ctx context.Context, req service.EditarPublicacionRequest, fotos []service.FotoSubida) error {
	args := m.Called(ctx, req, fotos)
	return args.Error(0)
}

func (m *MockPublicacionService) Eliminar(ctx context.Context, id, idUsuario int64) error {
	args := m.Called(ctx, id, idUsuario)
	return args.Error(0)
}

type MockFavoritoService struct {
	mock.Mock
}

func (m *MockFavoritoService) Guardar(ctx context.Context, idUsuario, idPublicacion int64) error {
	args := m.Called(ctx, idUsuario, idPublicacion)
	return args.Error(0)
}

func (m *MockFavoritoService) Borrar(ctx context.Context, idUsuario, idPublicacion int64) error {
	args := m.Called(ctx, idUsuario, idPublicacion)
	return args.Error(0)
}

func (m *MockFavoritoService) EsFavorito(ctx context.Context, idUsuario, idPublicacion int64) (bool, error) {
	args := m.Called(ctx, idUsuario, idPublicacion)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoritoService) Guardadas(ctx context.Context, idUsuario int64) ([]models.PublicacionDetalle, error) {
	args := m.Called(ctx, idUsuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicacionDetalle), args.Error(1)
}

type MockTestimonioService struct {
	mock.Mock
}

func (m *MockTestimonioService) Crear(ctx context.Context, t *models.Testimonio) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonioService) Listar(ctx context.Context) ([]models.Testimonio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonio), args.Error(1)
}
