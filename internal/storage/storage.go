package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
)

// Storage persiste las imágenes de las publicaciones. SaveImage devuelve
// el nombre interno del objeto (para poder borrarlo) y la URL pública
// que se guarda en la base.
type Storage interface {
	SaveImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "minio":
		return NewMinIOStorage(cfg)
	case "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %s", cfg.StorageDriver)
	}
}

// LocalStorage escribe en disco bajo PublicDir; los archivos se sirven
// como estáticos en PublicPrefix.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.PublicDir, 0o755); err != nil {
		return nil, fmt.Errorf("no se pudo crear el directorio de imágenes: %w", err)
	}

	return &LocalStorage{
		dir:       cfg.PublicDir,
		urlPrefix: strings.TrimSuffix(cfg.PublicPrefix, "/"),
	}, nil
}

func (s *LocalStorage) SaveImage(_ context.Context, fileName string, file io.Reader, _ int64) (string, string, error) {
	objectName := nombreUnico(fileName)

	dst, err := os.Create(filepath.Join(s.dir, objectName))
	if err != nil {
		return "", "", fmt.Errorf("error al crear el archivo de imagen: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", "", fmt.Errorf("error al escribir la imagen: %w", err)
	}

	return objectName, s.urlPrefix + "/" + objectName, nil
}

func (s *LocalStorage) DeleteImage(_ context.Context, objectName string) error {
	// objectName es un nombre plano generado acá, nunca una ruta
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(objectName))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error al borrar la imagen: %w", err)
	}
	return nil
}

func nombreUnico(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return fmt.Sprintf("%s-%s%s", base, uuid.New().String(), ext)
}
