package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ValentinoCattaneoLuna/modaCircular/cmd/app"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	handlers "github.com/ValentinoCattaneoLuna/modaCircular/internal/handler"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY no está definido en el archivo .env")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)
	auth := middleware.Auth(cfg, repo.Usuario)

	r := mux.NewRouter()

	r.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// las imágenes subidas se sirven como estáticos con el driver local
	if cfg.StorageDriver == "local" {
		r.PathPrefix(cfg.PublicPrefix + "/").Handler(
			http.StripPrefix(cfg.PublicPrefix+"/", http.FileServer(http.Dir(cfg.PublicDir))))
	}

	api := r.PathPrefix("/api").Subrouter()

	// rutas públicas
	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/publicaciones", handler.VerPublicaciones).Methods(http.MethodGet)
	api.HandleFunc("/publicaciones/{id_publicacion:[0-9]+}", handler.VerPublicacionPorID).Methods(http.MethodGet)

	api.HandleFunc("/publicaciones_fk/talles", handler.VerTalles).Methods(http.MethodGet)
	api.HandleFunc("/publicaciones_fk/categorias", handler.VerCategorias).Methods(http.MethodGet)
	api.HandleFunc("/publicaciones_fk/tipo_publicacion", handler.VerTiposPublicacion).Methods(http.MethodGet)

	api.HandleFunc("/testimonios", handler.VerTestimonios).Methods(http.MethodGet)
	api.HandleFunc("/testimonios", handler.CrearTestimonio).Methods(http.MethodPost)

	api.HandleFunc("/usuarios", handler.VerUsuarios).Methods(http.MethodGet)
	api.HandleFunc("/usuarios/username/{username}", handler.VerUsuarioPorUsername).Methods(http.MethodGet)
	api.HandleFunc("/usuarios/{id_usuario:[0-9]+}", handler.VerUsuarioPorID).Methods(http.MethodGet)

	// rutas protegidas por el token
	priv := api.NewRoute().Subrouter()
	priv.Use(mux.MiddlewareFunc(auth))

	priv.HandleFunc("/publicaciones", handler.CrearPublicacion).Methods(http.MethodPost)
	priv.HandleFunc("/publicaciones/{id_publicacion:[0-9]+}", handler.EditarPublicacion).Methods(http.MethodPut)
	priv.HandleFunc("/publicaciones/{id_publicacion:[0-9]+}", handler.EliminarPublicacion).Methods(http.MethodDelete)

	priv.HandleFunc("/guardar/guardarPublicacion", handler.GuardarPublicacion).Methods(http.MethodPost)
	priv.HandleFunc("/guardar/borrarPublicacion/{id_publicacion:[0-9]+}", handler.BorrarPublicacionGuardada).Methods(http.MethodDelete)
	priv.HandleFunc("/guardar/estado/{id_publicacion:[0-9]+}", handler.EstadoFavorito).Methods(http.MethodGet)
	priv.HandleFunc("/guardar/guardadas", handler.VerGuardadas).Methods(http.MethodGet)

	priv.HandleFunc("/usuarios/{id_usuario:[0-9]+}", handler.ActualizarUsuario).Methods(http.MethodPatch)

	handlerChain := middleware.Chain(
		r,
		middleware.Logging,
		middleware.CORS,
		middleware.Recovery,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Servidor escuchando en http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
