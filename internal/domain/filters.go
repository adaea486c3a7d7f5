package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Page struct {
	Limit int64
	Skip  int64
}

type RestaurantFilter struct {
	Search     string
	TipoComida string
	SortBy     string
	Desc       bool
	Page       Page
}

type UserFilter struct {
	Search string
	SortBy string
	Desc   bool
	Page   Page
}

type MenuFilter struct {
	Tipo      string
	PrecioMin *int
	PrecioMax *int
	SortBy    string
	Desc      bool
	Page      Page
}

type OrderFilter struct {
	UsuarioID     *primitive.ObjectID
	RestauranteID *primitive.ObjectID
	Estado        string
	Desde         *time.Time
	Hasta         *time.Time
	Page          Page
}

type ReviewFilter struct {
	UsuarioID     *primitive.ObjectID
	RestauranteID *primitive.ObjectID
	Puntaje       *int
	Page          Page
}
