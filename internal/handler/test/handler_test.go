package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/ValentinoCattaneoLuna/modaCircular/internal/config"
	handlers "github.com/ValentinoCattaneoLuna/modaCircular/internal/handler"
	"github.com/ValentinoCattaneoLuna/modaCircular/internal/middleware"
)

type mocks struct {
	auth        *MockAuthService
	usuario     *MockUsuarioService
	publicacion *MockPublicacionService
	favorito    *MockFavoritoService
	testimonio  *MockTestimonioService
}

func crearHandlerDePrueba() (*handlers.Handlers, *mocks) {
	m := &mocks{
		auth:        new(MockAuthService),
		usuario:     new(MockUsuarioService),
		publicacion: new(MockPublicacionService),
		favorito:    new(MockFavoritoService),
		testimonio:  new(MockTestimonioService),
	}

	cfg := &config.Config{
		JWTSecretKey:  "clave-de-prueba",
		MaxUploadSize: 10 * 1024 * 1024,
		MaxFotos:      6,
	}

	h := &handlers.Handlers{
		AuthService:        m.auth,
		UsuarioService:     m.usuario,
		PublicacionService: m.publicacion,
		FavoritoService:    m.favorito,
		TestimonioService:  m.testimonio,
		Cfg:                cfg,
		Validate:           validator.New(),
	}

	return h, m
}

// conUsuario simula lo que el middleware de autenticación cuelga del
// contexto tras validar el token.
func conUsuario(r *http.Request, id int64, email, nombre string) *http.Request {
	return r.WithContext(middleware.ConUsuario(r.Context(), id, email, nombre))
}

func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}
