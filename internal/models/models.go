package models

import (
	"database/sql"
	"time"
)

type Usuario struct {
	IDUsuario     int64      `json:"id_usuario" db:"id_usuario"`
	Nombre        string     `json:"nombre" db:"nombre"`
	Apellido      string     `json:"apellido" db:"apellido"`
	Username      string     `json:"username" db:"username"`
	Email         string     `json:"email" db:"email"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	Nacimiento    *time.Time `json:"nacimiento" db:"nacimiento"`
	Telefono      *string    `json:"telefono" db:"telefono"`
	Ubicacion     *string    `json:"ubicacion" db:"ubicacion"`
	Avatar        *string    `json:"avatar" db:"avatar"`
	Bio           *string    `json:"bio" db:"bio"`
	FechaCreacion time.Time  `json:"joinDate" db:"fecha_creacion"`
}

type Publicacion struct {
	IDPublicacion     int64     `json:"id_publicacion" db:"id_publicacion"`
	IDUsuario         int64     `json:"id_usuario" db:"id_usuario"`
	IDTipoPublicacion int64     `json:"id_tipo_publicacion" db:"id_tipo_publicacion"`
	IDCategoria       int64     `json:"id_categoria" db:"id_categoria"`
	IDTalle           int64     `json:"id_talle" db:"id_talle"`
	Titulo            string    `json:"titulo" db:"titulo"`
	Descripcion       *string   `json:"descripcion" db:"descripcion"`
	Precio            *float64  `json:"precio" db:"precio"`
	Estado            string    `json:"estado" db:"estado"`
	Color             *string   `json:"color" db:"color"`
	Activo            bool      `json:"activo" db:"activo"`
	FechaPublicacion  time.Time `json:"fecha_publicacion" db:"fecha_publicacion"`
}

type Foto struct {
	IDFoto        int64  `json:"id_foto" db:"id_foto"`
	IDPublicacion int64  `json:"id_publicacion" db:"id_publicacion"`
	URLImagen     string `json:"url_imagen" db:"url_imagen"`
	Orden         int    `json:"orden" db:"orden"`
	EsPrincipal   bool   `json:"es_principal" db:"es_principal"`
}

// PublicacionDetalle es la proyección que consume el feed: la publicación
// con los textos de catálogo, el dueño y sus imágenes en orden.
type PublicacionDetalle struct {
	IDPublicacion    int64          `json:"id_publicacion" db:"id_publicacion"`
	IDUsuario        int64          `json:"id_usuario" db:"id_usuario"`
	NombreUsuario    string         `json:"nombre_usuario" db:"nombre_usuario"`
	ApellidoUsuario  string         `json:"apellido_usuario" db:"apellido_usuario"`
	TipoPublicacion  string         `json:"tipo_publicacion" db:"tipo_publicacion"`
	Categoria        string         `json:"categoria" db:"categoria"`
	Talle            string         `json:"talle" db:"talle"`
	Titulo           string         `json:"titulo" db:"titulo"`
	Descripcion      *string        `json:"descripcion" db:"descripcion"`
	Precio           *float64       `json:"precio" db:"precio"`
	Estado           string         `json:"estado" db:"estado"`
	Color            *string        `json:"color" db:"color"`
	FechaPublicacion string         `json:"fecha_publicacion" db:"fecha_publicacion"`
	Activo           bool           `json:"activo" db:"activo"`
	ImagenesRaw      sql.NullString `json:"-" db:"imagenes"`
	Imagenes         []string       `json:"imagenes" db:"-"`
	EsFavorito       bool           `json:"es_favorito" db:"-"`
}

type Favorito struct {
	IDUsuario     int64     `json:"id_usuario" db:"id_usuario"`
	IDPublicacion int64     `json:"id_publicacion" db:"id_publicacion"`
	FechaFavorito time.Time `json:"fecha_favorito" db:"fecha_favorito"`
}

type TipoPublicacion struct {
	IDTipoPublicacion int64  `json:"id_tipo_publicacion" db:"id_tipo_publicacion"`
	TipoPublicacion   string `json:"tipo_publicacion" db:"tipo_publicacion"`
}

type Categoria struct {
	IDCategoria int64  `json:"id_categoria" db:"id_categoria"`
	Categoria   string `json:"categoria" db:"categoria"`
}

type Talle struct {
	IDTalle int64  `json:"id_talle" db:"id_talle"`
	Talle   string `json:"talle" db:"talle"`
}

type Testimonio struct {
	IDTestimonio      int64     `json:"id_testimonio" db:"id_testimonio"`
	NombreTestimonio  string    `json:"nombre_testimonio" db:"nombre_testimonio"`
	MensajeTestimonio string    `json:"mensaje_testimonio" db:"mensaje_testimonio"`
	CantidadEstrellas int       `json:"cantidad_estrellas" db:"cantidad_estrellas"`
	FechaCreacion     time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}
