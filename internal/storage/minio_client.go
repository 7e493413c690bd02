package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
)

// MinIOStorage guarda las imágenes en un bucket; útil cuando el backend
// corre en más de una instancia y el disco local no alcanza.
type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error al crear el cliente de MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("error al verificar el bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region}); err != nil {
			return nil, fmt.Errorf("error al crear el bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.MinIO.BucketName,
		publicURL: strings.TrimSuffix(cfg.MinIO.PublicURL, "/"),
	}, nil
}

func (s *MinIOStorage) SaveImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	objectName := nombreUnico(fileName)

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(objectName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("error al subir la imagen a MinIO: %w", err)
	}

	imageURL := fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName)

	return objectName, imageURL, nil
}

func (s *MinIOStorage) DeleteImage(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("error al borrar la imagen de MinIO: %w", err)
	}
	return nil
}
