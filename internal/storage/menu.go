package storage

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *MongoRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	if _, err := r.DB.Collection(colArticulos).InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

func (r *MongoRepository) InsertMenuItems(ctx context.Context, items []domain.MenuItem) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, 0, len(items))
	ids := make([]primitive.ObjectID, 0, len(items))
	for i := range items {
		items[i].ID = primitive.NewObjectID()
		ids = append(ids, items[i].ID)
		docs = append(docs, items[i])
	}
	if _, err := r.DB.Collection(colArticulos).InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *MongoRepository) ListMenuItems(ctx context.Context, restauranteID primitive.ObjectID, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	query := bson.M{"restaurante_id": restauranteID}
	if filter.Tipo != "" {
		query["tipo"] = filter.Tipo
	}
	if filter.PrecioMin != nil || filter.PrecioMax != nil {
		precio := bson.M{}
		if filter.PrecioMin != nil {
			precio["$gte"] = *filter.PrecioMin
		}
		if filter.PrecioMax != nil {
			precio["$lte"] = *filter.PrecioMax
		}
		query["precio"] = precio
	}

	sortField := "nombre"
	if filter.SortBy == "precio" {
		sortField = "precio"
	}
	sort := bson.D{{Key: sortField, Value: sortDirection(filter.Desc)}}

	cursor, err := r.DB.Collection(colArticulos).Find(ctx, query, findOptions(filter.Page.Limit, filter.Page.Skip, sort))
	if err != nil {
		return nil, err
	}

	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := r.DB.Collection(colArticulos).FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := r.DB.Collection(colArticulos).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colArticulos).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoRepository) SetMenuItemImage(ctx context.Context, id, imagenID primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colArticulos).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"imagen_id": imagenID}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// ClearImageRef detaches a deleted image from any articulo still pointing at it.
func (r *MongoRepository) ClearImageRef(ctx context.Context, imagenID primitive.ObjectID) error {
	_, err := r.DB.Collection(colArticulos).UpdateMany(ctx,
		bson.M{"imagen_id": imagenID},
		bson.M{"$unset": bson.M{"imagen_id": ""}})
	return err
}
