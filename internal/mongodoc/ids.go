package mongodoc

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid identifier")

// ParseID decodes the external 24-character hex form of an ObjectID. Every
// handler that takes a path or body identifier goes through this before
// touching storage.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

func FormatID(id primitive.ObjectID) string {
	return id.Hex()
}
