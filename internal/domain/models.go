package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Direccion struct {
	Calle       string    `bson:"calle" json:"calle"`
	Ciudad      string    `bson:"ciudad" json:"ciudad"`
	Coordenadas []float64 `bson:"coordenadas" json:"coordenadas"`
}

type Horario struct {
	Abre   string `bson:"abre" json:"abre"`
	Cierra string `bson:"cierra" json:"cierra"`
}

type Restaurant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre     string             `bson:"nombre" json:"nombre"`
	Direccion  Direccion          `bson:"direccion" json:"direccion"`
	TipoComida []string           `bson:"tipo_comida" json:"tipo_comida"`
	Horario    Horario            `bson:"horario" json:"horario"`
}

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Nombre    string               `bson:"nombre" json:"nombre"`
	Email     string               `bson:"email" json:"email"`
	Favoritos []primitive.ObjectID `bson:"favoritos" json:"favoritos"`
}

type MenuItem struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	RestauranteID primitive.ObjectID  `bson:"restaurante_id" json:"restaurante_id"`
	Nombre        string              `bson:"nombre" json:"nombre"`
	Descripcion   string              `bson:"descripcion" json:"descripcion"`
	Precio        int                 `bson:"precio" json:"precio"`
	Tipo          []string            `bson:"tipo" json:"tipo"`
	ImagenID      *primitive.ObjectID `bson:"imagen_id,omitempty" json:"imagen_id,omitempty"`
}

// LineItem carries a price snapshot taken when the order is written; it is
// never re-read from the articulo afterwards.
type LineItem struct {
	ArticuloID primitive.ObjectID `bson:"articulo_id" json:"articulo_id"`
	Nombre     string             `bson:"nombre" json:"nombre"`
	Cantidad   int                `bson:"cantidad" json:"cantidad"`
	Precio     int                `bson:"precio" json:"precio"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UsuarioID     primitive.ObjectID `bson:"usuario_id" json:"usuario_id"`
	RestauranteID primitive.ObjectID `bson:"restaurante_id" json:"restaurante_id"`
	Fecha         time.Time          `bson:"fecha" json:"fecha"`
	Estado        string             `bson:"estado" json:"estado"`
	Pedido        []LineItem         `bson:"pedido" json:"pedido"`
	Total         int                `bson:"total" json:"total"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UsuarioID     primitive.ObjectID `bson:"usuario_id" json:"usuario_id"`
	RestauranteID primitive.ObjectID `bson:"restaurante_id" json:"restaurante_id"`
	Puntaje       int                `bson:"puntaje" json:"puntaje"`
	Comentario    string             `bson:"comentario" json:"comentario"`
	Fecha         time.Time          `bson:"fecha" json:"fecha"`
}

// RatingGroup is one row of the review grouping pipeline, before the
// restaurant record is joined in.
type RatingGroup struct {
	RestauranteID primitive.ObjectID `bson:"_id"`
	Promedio      float64            `bson:"promedio"`
	Resenas       int                `bson:"resenas"`
}

type RestaurantSummary struct {
	RestauranteID string    `json:"restaurante_id"`
	Nombre        string    `json:"nombre"`
	TipoComida    []string  `json:"tipo_comida"`
	Direccion     Direccion `json:"direccion"`
	Promedio      float64   `json:"promedio"`
	Resenas       int       `json:"resenas"`
}

// Image is a blob-store payload; the store hands back an opaque ObjectID
// reference that menu items embed as imagen_id.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	RestauranteID string    `json:"restaurante_id"`
	UsuarioID     string    `json:"usuario_id,omitempty"`
	Estado        string    `json:"estado,omitempty"`
	Total         int       `json:"total,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
