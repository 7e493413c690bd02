package service

import (
	"context"
	"io"
	"log"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/models"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/storage"
)

type CrearPublicacionRequest struct {
	IDUsuario         int64
	IDTipoPublicacion int64
	IDCategoria       int64
	IDTalle           int64
	Titulo            string
	Descripcion       *string
	Precio            *float64
	Estado            string
	Color             *string
}

// EditarPublicacionRequest lleva solo los campos enviados; los nil se
// ignoran al armar el diff contra la fila actual.
type EditarPublicacionRequest struct {
	IDPublicacion     int64
	IDUsuario         int64
	IDTipoPublicacion *int64
	IDCategoria       *int64
	IDTalle           *int64
	Titulo            *string
	Descripcion       *string
	Precio            *float64
	Estado            *string
	Color             *string
	Activo            *bool
}

type FotoSubida struct {
	Nombre  string
	Archivo io.Reader
	Tamano  int64
}

type PublicacionService interface {
	Crear(ctx context.Context, req CrearPublicacionRequest, fotos []FotoSubida) (int64, error)
	Listar(ctx context.Context) ([]models.PublicacionDetalle, error)
	Obtener(ctx context.Context, id int64) (*models.PublicacionDetalle, error)
	Editar(ctx context.Context, req EditarPublicacionRequest, fotos []FotoSubida) error
	Eliminar(ctx context.Context, id, idUsuario int64) error
}

type publicacionService struct {
	pubRepo      repository.PublicacionRepository
	catalogoRepo repository.CatalogoRepository
	storage      storage.Storage
	cfg          *config.Config
}

func NewPublicacionService(pubRepo repository.PublicacionRepository, catalogoRepo repository.CatalogoRepository, storage storage.Storage, cfg *config.Config) PublicacionService {
	return &publicacionService{
		pubRepo:      pubRepo,
		catalogoRepo: catalogoRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *publicacionService) Crear(ctx context.Context, req CrearPublicacionRequest, fotos []FotoSubida) (int64, error) {
	if len(fotos) == 0 {
		return 0, ErrSinImagenes
	}
	if len(fotos) > s.cfg.MaxFotos {
		return 0, ErrDemasiadasImagenes
	}

	if err := s.validarPrecio(ctx, req.IDTipoPublicacion, req.Precio); err != nil {
		return 0, err
	}

	objectNames, urls, err := s.guardarFotos(ctx, fotos)
	if err != nil {
		return 0, err
	}

	pub := &models.Publicacion{
		IDUsuario:         req.IDUsuario,
		IDTipoPublicacion: req.IDTipoPublicacion,
		IDCategoria:       req.IDCategoria,
		IDTalle:           req.IDTalle,
		Titulo:            req.Titulo,
		Descripcion:       req.Descripcion,
		Precio:            req.Precio,
		Estado:            req.Estado,
		Color:             req.Color,
	}

	id, err := s.pubRepo.Create(ctx, pub, urls)
	if err != nil {
		// la transacción ya hizo rollback; los archivos quedan huérfanos
		// si no se borran acá
		s.limpiarFotos(ctx, objectNames)
		return 0, err
	}

	return id, nil
}

func (s *publicacionService) Listar(ctx context.Context) ([]models.PublicacionDetalle, error) {
	return s.pubRepo.GetAll(ctx)
}

func (s *publicacionService) Obtener(ctx context.Context, id int64) (*models.PublicacionDetalle, error) {
	return s.pubRepo.GetByID(ctx, id)
}

func (s *publicacionService) Editar(ctx context.Context, req EditarPublicacionRequest, fotos []FotoSubida) error {
	actual, err := s.pubRepo.GetRow(ctx, req.IDPublicacion)
	if err != nil {
		return err
	}

	if actual.IDUsuario != req.IDUsuario {
		return ErrNoAutorizado
	}

	if len(fotos) > s.cfg.MaxFotos {
		return ErrDemasiadasImagenes
	}

	cambios := diffPublicacion(actual, &req)

	// el precio se valida contra el tipo y el precio resultantes
	tipoFinal := actual.IDTipoPublicacion
	if req.IDTipoPublicacion != nil {
		tipoFinal = *req.IDTipoPublicacion
	}
	precioFinal := actual.Precio
	if req.Precio != nil {
		precioFinal = req.Precio
	}
	if err := s.validarPrecio(ctx, tipoFinal, precioFinal); err != nil {
		return err
	}

	objectNames, urls, err := s.guardarFotos(ctx, fotos)
	if err != nil {
		return err
	}

	reemplazar := s.cfg.PhotoEditMode == "replace"
	if err := s.pubRepo.Update(ctx, req.IDPublicacion, cambios, urls, reemplazar); err != nil {
		s.limpiarFotos(ctx, objectNames)
		return err
	}

	return nil
}

func (s *publicacionService) Eliminar(ctx context.Context, id, idUsuario int64) error {
	actual, err := s.pubRepo.GetRow(ctx, id)
	if err != nil {
		return err
	}

	if actual.IDUsuario != idUsuario {
		return ErrNoAutorizado
	}

	return s.pubRepo.Delete(ctx, id)
}

func (s *publicacionService) validarPrecio(ctx context.Context, idTipo int64, precio *float64) error {
	tipo, err := s.catalogoRepo.GetTipoPublicacionByID(ctx, idTipo)
	if err != nil {
		return err
	}

	if tipo.TipoPublicacion == "Venta" && precio == nil {
		return ErrPrecioRequerido
	}

	return nil
}

func (s *publicacionService) guardarFotos(ctx context.Context, fotos []FotoSubida) ([]string, []string, error) {
	objectNames := make([]string, 0, len(fotos))
	urls := make([]string, 0, len(fotos))

	for _, foto := range fotos {
		objectName, url, err := s.storage.SaveImage(ctx, foto.Nombre, foto.Archivo, foto.Tamano)
		if err != nil {
			s.limpiarFotos(ctx, objectNames)
			return nil, nil, err
		}
		objectNames = append(objectNames, objectName)
		urls = append(urls, url)
	}

	return objectNames, urls, nil
}

func (s *publicacionService) limpiarFotos(ctx context.Context, objectNames []string) {
	for _, objectName := range objectNames {
		if err := s.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Aviso: no se pudo borrar la imagen %s: %v", objectName, err)
		}
	}
}

// diffPublicacion compara cada campo enviado con la fila actual y se
// queda solo con las columnas que realmente cambian.
func diffPublicacion(actual *models.Publicacion, req *EditarPublicacionRequest) map[string]interface{} {
	cambios := make(map[string]interface{})

	if req.IDTipoPublicacion != nil && *req.IDTipoPublicacion != actual.IDTipoPublicacion {
		cambios["id_tipo_publicacion"] = *req.IDTipoPublicacion
	}
	if req.IDCategoria != nil && *req.IDCategoria != actual.IDCategoria {
		cambios["id_categoria"] = *req.IDCategoria
	}
	if req.IDTalle != nil && *req.IDTalle != actual.IDTalle {
		cambios["id_talle"] = *req.IDTalle
	}
	if req.Titulo != nil && *req.Titulo != actual.Titulo {
		cambios["titulo"] = *req.Titulo
	}
	if req.Descripcion != nil && distintoStr(req.Descripcion, actual.Descripcion) {
		cambios["descripcion"] = *req.Descripcion
	}
	if req.Precio != nil && distintoFloat(req.Precio, actual.Precio) {
		cambios["precio"] = *req.Precio
	}
	if req.Estado != nil && *req.Estado != actual.Estado {
		cambios["estado"] = *req.Estado
	}
	if req.Color != nil && distintoStr(req.Color, actual.Color) {
		cambios["color"] = *req.Color
	}
	if req.Activo != nil && *req.Activo != actual.Activo {
		cambios["activo"] = *req.Activo
	}

	return cambios
}

func distintoStr(nuevo, actual *string) bool {
	return actual == nil || *nuevo != *actual
}

func distintoFloat(nuevo, actual *float64) bool {
	return actual == nil || *nuevo != *actual
}
