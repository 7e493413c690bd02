package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/middleware"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/repository"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/service"
)

// formatos aceptados para las fotos de una publicación
var tiposImagenPermitidos = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
	"image/webp": true,
}

func (h *Handlers) CrearPublicacion(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Error al procesar el formulario", http.StatusBadRequest)
		return
	}

	idTipo := parseInt64Form(r, "id_tipo_publicacion")
	idCategoria := parseInt64Form(r, "id_categoria")
	idTalle := parseInt64Form(r, "id_talle")
	titulo := r.FormValue("titulo")
	estado := r.FormValue("estado")

	if idTipo == nil || idCategoria == nil || idTalle == nil || titulo == "" || estado == "" {
		WriteError(w, "Faltan datos obligatorios", http.StatusBadRequest)
		return
	}

	precio, err := parseFloatForm(r, "precio")
	if err != nil {
		WriteError(w, "Precio inválido", http.StatusBadRequest)
		return
	}

	req := service.CrearPublicacionRequest{
		IDUsuario:         idUsuario,
		IDTipoPublicacion: *idTipo,
		IDCategoria:       *idCategoria,
		IDTalle:           *idTalle,
		Titulo:            titulo,
		Descripcion:       valorFormulario(r, "descripcion"),
		Precio:            precio,
		Estado:            estado,
		Color:             valorFormulario(r, "color"),
	}

	fotos, cerrar, ok := h.abrirFotos(w, r)
	if !ok {
		return
	}
	defer cerrar()

	id, err := h.PublicacionService.Crear(r.Context(), req, fotos)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSinImagenes):
			WriteError(w, "Se requiere al menos una imagen", http.StatusBadRequest)
		case errors.Is(err, service.ErrDemasiadasImagenes):
			WriteError(w, fmt.Sprintf("Se permiten hasta %d imágenes", h.Cfg.MaxFotos), http.StatusBadRequest)
		case errors.Is(err, service.ErrPrecioRequerido):
			WriteError(w, "El precio es obligatorio para publicaciones de venta", http.StatusBadRequest)
		default:
			log.Printf("error al crear publicación: %v", err)
			WriteError(w, "Error al crear publicación", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Publicación creada",
		"id":      id,
	}, http.StatusCreated)
}

func (h *Handlers) VerPublicaciones(w http.ResponseWriter, r *http.Request) {
	publicaciones, err := h.PublicacionService.Listar(r.Context())
	if err != nil {
		log.Printf("error al obtener publicaciones: %v", err)
		WriteError(w, "Error al obtener publicaciones", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, publicaciones, http.StatusOK)
}

func (h *Handlers) VerPublicacionPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDeRuta(r, "id_publicacion")
	if err != nil {
		WriteError(w, "ID de publicación inválido", http.StatusBadRequest)
		return
	}

	publicacion, err := h.PublicacionService.Obtener(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPublicacionNoEncontrada) {
			WriteError(w, "Publicación no encontrada", http.StatusNotFound)
			return
		}
		log.Printf("error al obtener la publicación: %v", err)
		WriteError(w, "Error al obtener la publicación", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, publicacion, http.StatusOK)
}

func (h *Handlers) EditarPublicacion(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	id, err := idDeRuta(r, "id_publicacion")
	if err != nil {
		WriteError(w, "ID de publicación inválido", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Error al procesar el formulario", http.StatusBadRequest)
		return
	}

	precio, err := parseFloatForm(r, "precio")
	if err != nil {
		WriteError(w, "Precio inválido", http.StatusBadRequest)
		return
	}

	req := service.EditarPublicacionRequest{
		IDPublicacion:     id,
		IDUsuario:         idUsuario,
		IDTipoPublicacion: parseInt64Form(r, "id_tipo_publicacion"),
		IDCategoria:       parseInt64Form(r, "id_categoria"),
		IDTalle:           parseInt64Form(r, "id_talle"),
		Titulo:            valorFormulario(r, "titulo"),
		Descripcion:       valorFormulario(r, "descripcion"),
		Precio:            precio,
		Estado:            valorFormulario(r, "estado"),
		Color:             valorFormulario(r, "color"),
		Activo:            parseBoolForm(r, "activo"),
	}

	fotos, cerrar, ok := h.abrirFotos(w, r)
	if !ok {
		return
	}
	defer cerrar()

	if err := h.PublicacionService.Editar(r.Context(), req, fotos); err != nil {
		switch {
		case errors.Is(err, repository.ErrPublicacionNoEncontrada):
			WriteError(w, "Publicación no encontrada", http.StatusNotFound)
		case errors.Is(err, service.ErrNoAutorizado):
			WriteError(w, "No tenés permisos para editar esta publicación", http.StatusForbidden)
		case errors.Is(err, service.ErrDemasiadasImagenes):
			WriteError(w, fmt.Sprintf("Se permiten hasta %d imágenes", h.Cfg.MaxFotos), http.StatusBadRequest)
		case errors.Is(err, service.ErrPrecioRequerido):
			WriteError(w, "El precio es obligatorio para publicaciones de venta", http.StatusBadRequest)
		default:
			log.Printf("error al editar la publicación: %v", err)
			WriteError(w, "Error al editar la publicación", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Publicación actualizada"}, http.StatusOK)
}

func (h *Handlers) EliminarPublicacion(w http.ResponseWriter, r *http.Request) {
	idUsuario, ok := middleware.UsuarioDelContexto(r.Context())
	if !ok {
		WriteError(w, "Usuario no autenticado", http.StatusUnauthorized)
		return
	}

	id, err := idDeRuta(r, "id_publicacion")
	if err != nil {
		WriteError(w, "ID de publicación inválido", http.StatusBadRequest)
		return
	}

	if err := h.PublicacionService.Eliminar(r.Context(), id, idUsuario); err != nil {
		switch {
		case errors.Is(err, repository.ErrPublicacionNoEncontrada):
			WriteError(w, "Publicación no encontrada", http.StatusNotFound)
		case errors.Is(err, service.ErrNoAutorizado):
			WriteError(w, "No tenés permisos para eliminar esta publicación", http.StatusForbidden)
		default:
			log.Printf("error al eliminar la publicación: %v", err)
			WriteError(w, "Error al eliminar la publicación", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Publicación eliminada"}, http.StatusOK)
}

// abrirFotos valida el tipo de cada imagen del campo "imagenes" y las
// deja listas para el servicio; el cierre queda a cargo del caller.
func (h *Handlers) abrirFotos(w http.ResponseWriter, r *http.Request) ([]service.FotoSubida, func(), bool) {
	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["imagenes"]
	}

	if len(files) > h.Cfg.MaxFotos {
		WriteError(w, fmt.Sprintf("Se permiten hasta %d imágenes", h.Cfg.MaxFotos), http.StatusBadRequest)
		return nil, nil, false
	}

	fotos := make([]service.FotoSubida, 0, len(files))
	abiertos := make([]multipart.File, 0, len(files))
	cerrar := func() {
		for _, f := range abiertos {
			f.Close()
		}
	}

	for _, header := range files {
		if !tiposImagenPermitidos[header.Header.Get("Content-Type")] {
			cerrar()
			WriteError(w, "Solo se permiten imágenes PNG, JPG, JPEG o WEBP", http.StatusBadRequest)
			return nil, nil, false
		}

		file, err := header.Open()
		if err != nil {
			cerrar()
			WriteError(w, "No se pudo leer la imagen", http.StatusBadRequest)
			return nil, nil, false
		}

		abiertos = append(abiertos, file)
		fotos = append(fotos, service.FotoSubida{
			Nombre:  header.Filename,
			Archivo: file,
			Tamano:  header.Size,
		})
	}

	return fotos, cerrar, true
}

func idDeRuta(r *http.Request, nombre string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[nombre], 10, 64)
}

func valorFormulario(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func parseInt64Form(r *http.Request, key string) *int64 {
	valor := valorFormulario(r, key)
	if valor == nil {
		return nil
	}
	n, err := strconv.ParseInt(*valor, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatForm(r *http.Request, key string) (*float64, error) {
	valor := valorFormulario(r, key)
	if valor == nil || *valor == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*valor, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseBoolForm(r *http.Request, key string) *bool {
	valor := valorFormulario(r, key)
	if valor == nil {
		return nil
	}
	b, err := strconv.ParseBool(*valor)
	if err != nil {
		return nil
	}
	return &b
}
