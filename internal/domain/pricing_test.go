package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPriceOrder_RecomputesTotal(t *testing.T) {
	tacoID := primitive.NewObjectID()
	aguaID := primitive.NewObjectID()

	catalog := map[primitive.ObjectID]*MenuItem{
		tacoID: {ID: tacoID, Nombre: "Tacos al pastor", Precio: 50},
		aguaID: {ID: aguaID, Nombre: "Agua de horchata", Precio: 75},
	}
	lookup := func(id primitive.ObjectID) (*MenuItem, error) {
		item, ok := catalog[id]
		if !ok {
			return nil, errors.New("not found")
		}
		return item, nil
	}

	items := []LineItem{
		{ArticuloID: tacoID, Cantidad: 2, Precio: 50},
		{ArticuloID: aguaID, Cantidad: 1, Precio: 75},
	}

	resolved, total := PriceOrder(items, lookup)

	assert.Equal(t, 175, total)
	assert.Equal(t, "Tacos al pastor", resolved[0].Nombre)
	assert.Equal(t, "Agua de horchata", resolved[1].Nombre)
}

func TestPriceOrder_MissingArticleGetsSentinelName(t *testing.T) {
	lookup := func(id primitive.ObjectID) (*MenuItem, error) {
		return nil, errors.New("not found")
	}

	items := []LineItem{{ArticuloID: primitive.NewObjectID(), Cantidad: 3, Precio: 20}}

	resolved, total := PriceOrder(items, lookup)

	assert.Equal(t, UnknownItemName, resolved[0].Nombre)
	assert.Equal(t, 60, total)
}

func TestPriceOrder_NilLookup(t *testing.T) {
	items := []LineItem{{ArticuloID: primitive.NewObjectID(), Cantidad: 1, Precio: 10}}

	resolved, total := PriceOrder(items, nil)

	assert.Equal(t, UnknownItemName, resolved[0].Nombre)
	assert.Equal(t, 10, total)
}

func TestPriceOrder_IgnoresClientProvidedNames(t *testing.T) {
	id := primitive.NewObjectID()
	lookup := func(primitive.ObjectID) (*MenuItem, error) {
		return &MenuItem{ID: id, Nombre: "Pozole", Precio: 80}, nil
	}

	items := []LineItem{{ArticuloID: id, Nombre: "totally made up", Cantidad: 1, Precio: 80}}

	resolved, _ := PriceOrder(items, lookup)

	assert.Equal(t, "Pozole", resolved[0].Nombre)
}
