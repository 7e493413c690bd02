package app

import (
	"log"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/database"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("No se pudo inicializar el almacenamiento de imágenes: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}
