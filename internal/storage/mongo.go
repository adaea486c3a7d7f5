package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colRestaurantes = "restaurantes"
	colUsuarios     = "usuarios"
	colArticulos    = "articulos"
	colOrdenes      = "ordenes"
	colResenas      = "resenas"
)

type MongoRepository struct {
	DB *mongo.Database
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{DB: db}
}

// EnsureIndexes creates the unique email index; user creation relies on the
// duplicate-key error it produces.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.DB.Collection(colUsuarios).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func sortDirection(desc bool) int {
	if desc {
		return -1
	}
	return 1
}

func findOptions(limit, skip int64, sort bson.D) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	return opts
}
