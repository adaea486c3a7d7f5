package mongodoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseID(FormatID(id))
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseID_Invalid(t *testing.T) {
	for _, input := range []string{"", "nope", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(input)
		assert.ErrorIs(t, err, ErrInvalidID)
	}
}

func TestProject_NestedObjectIDs(t *testing.T) {
	orderID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	articuloID := primitive.NewObjectID()

	doc := bson.M{
		"_id":        orderID,
		"usuario_id": userID,
		"total":      175,
		"pedido": bson.A{
			bson.M{"articulo_id": articuloID, "cantidad": 2},
		},
		"favoritos": []primitive.ObjectID{userID},
	}

	out := Project(doc)

	assert.Equal(t, orderID.Hex(), out["_id"])
	assert.Equal(t, userID.Hex(), out["usuario_id"])
	assert.Equal(t, 175, out["total"])

	pedido := out["pedido"].([]interface{})
	line := pedido[0].(bson.M)
	assert.Equal(t, articuloID.Hex(), line["articulo_id"])

	favoritos := out["favoritos"].([]interface{})
	assert.Equal(t, userID.Hex(), favoritos[0])
}

func TestProject_Idempotent(t *testing.T) {
	doc := bson.M{
		"_id":    primitive.NewObjectID(),
		"nested": bson.M{"ref": primitive.NewObjectID()},
	}

	once := Project(doc)
	twice := Project(once)

	assert.Equal(t, once, twice)
}
