package service

import (
	"context"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
)

// cantidad de testimonios que muestra la landing
const testimoniosLanding = 6

type TestimonioService interface {
	Crear(ctx context.Context, t *models.Testimonio) error
	Listar(ctx context.Context) ([]models.Testimonio, error)
}

type testimonioService struct {
	testimonioRepo repository.TestimonioRepository
}

func NewTestimonioService(testimonioRepo repository.TestimonioRepository) TestimonioService {
	return &testimonioService{testimonioRepo: testimonioRepo}
}

func (s *testimonioService) Crear(ctx context.Context, t *models.Testimonio) error {
	return s.testimonioRepo.Create(ctx, t)
}

func (s *testimonioService) Listar(ctx context.Context) ([]models.Testimonio, error) {
	return s.testimonioRepo.GetAleatorios(ctx, testimoniosLanding)
}
