package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Config struct {
	ServerPort    int
	DB            DB
	MinIO         MinIO
	JWTSecretKey  string
	TokenDuration time.Duration
	BcryptCost    int
	MaxUploadSize int64
	MaxFotos      int
	StorageDriver string // "local" o "minio"
	PublicDir     string
	PublicPrefix  string
	// "append" conserva las fotos existentes al editar, "replace" las reemplaza
	PhotoEditMode string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "moda_circular"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "publicaciones"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Aviso: archivo .env no encontrado, se usan las variables de entorno")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 4000),
		DB:            LoadDB(),
		MinIO:         LoadMinIO(),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		TokenDuration: parseDuration(getEnv("TOKEN_DURATION", "168h"), 168*time.Hour),
		BcryptCost:    getEnvAsInt("BCRYPT_SALT_ROUNDS", 10),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		MaxFotos:      getEnvAsInt("MAX_FOTOS", 6),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		PublicDir:     getEnv("PUBLIC_DIR", "public/publicaciones_img"),
		PublicPrefix:  getEnv("PUBLIC_PREFIX", "/public/publicaciones_img"),
		PhotoEditMode: getEnv("PHOTO_EDIT_MODE", "append"),
	}
}
