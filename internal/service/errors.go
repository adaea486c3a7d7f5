package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrInvalidScore    = errors.New("puntaje must be between 1 and 5")
	ErrInvalidOrder    = errors.New("order must reference a user, a restaurant and at least one item")
	ErrInvalidQuantity = errors.New("line item quantity must be positive")
	ErrInvalidInput    = errors.New("invalid input")
)

// translate maps store-level lookup failures onto the service taxonomy and
// leaves everything else untouched.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments), errors.Is(err, gridfs.ErrFileNotFound):
		return ErrNotFound
	default:
		return err
	}
}
