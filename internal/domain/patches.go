package domain

import "go.mongodb.org/mongo-driver/bson"

// Patch types model partial updates as explicit field masks: only fields
// present in the payload make it into the $set document, and _id is not
// settable at all.

type RestaurantPatch struct {
	Nombre     *string    `json:"nombre"`
	Direccion  *Direccion `json:"direccion"`
	TipoComida *[]string  `json:"tipo_comida"`
	Horario    *Horario   `json:"horario"`
}

func (p RestaurantPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Nombre != nil {
		set["nombre"] = *p.Nombre
	}
	if p.Direccion != nil {
		set["direccion"] = *p.Direccion
	}
	if p.TipoComida != nil {
		set["tipo_comida"] = *p.TipoComida
	}
	if p.Horario != nil {
		set["horario"] = *p.Horario
	}
	return set
}

type UserPatch struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email"`
}

func (p UserPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Nombre != nil {
		set["nombre"] = *p.Nombre
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	return set
}

type MenuItemPatch struct {
	Nombre      *string   `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	Precio      *int      `json:"precio"`
	Tipo        *[]string `json:"tipo"`
}

func (p MenuItemPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Nombre != nil {
		set["nombre"] = *p.Nombre
	}
	if p.Descripcion != nil {
		set["descripcion"] = *p.Descripcion
	}
	if p.Precio != nil {
		set["precio"] = *p.Precio
	}
	if p.Tipo != nil {
		set["tipo"] = *p.Tipo
	}
	return set
}

type OrderPatch struct {
	Estado *string     `json:"estado"`
	Pedido *[]LineItem `json:"pedido"`
}

type ReviewPatch struct {
	Puntaje    *int    `json:"puntaje"`
	Comentario *string `json:"comentario"`
}

func (p ReviewPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Puntaje != nil {
		set["puntaje"] = *p.Puntaje
	}
	if p.Comentario != nil {
		set["comentario"] = *p.Comentario
	}
	return set
}
