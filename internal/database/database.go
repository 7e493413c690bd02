package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
)

type DB struct {
	*sqlx.DB
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.DbHOST,
		cfg.DB.DbPORT,
		cfg.DB.DbUSER,
		cfg.DB.DbPASSWORD,
		cfg.DB.DbNAME,
		cfg.DB.DbSSLMODE,
	)

	log.Printf("Conectando a la base de datos: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}

	// pool acotado: una conexión por request en vuelo
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := DB{db}

	if err := dbStruct.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		log.Printf("Aviso: error al aplicar migraciones: %v", err)
	}

	if err := dbStruct.HealthCheck(); err != nil {
		return nil, fmt.Errorf("la verificación de la base de datos falló: %w", err)
	}

	log.Println("Conexión a PostgreSQL establecida")
	return &dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(migrationFilePath string) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("archivo de migraciones no encontrado: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("error al leer el archivo de migraciones: %w", err)
	}

	log.Printf("Aplicando migraciones desde: %s", migrationFilePath)

	if _, err := db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error al ejecutar las migraciones: %w", err)
	}

	log.Println("Migraciones aplicadas correctamente")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("la conexión a la base de datos no está inicializada")
	}
	return db.Ping()
}
