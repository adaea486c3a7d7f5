package storage

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *MongoRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) (primitive.ObjectID, error) {
	rest.ID = primitive.NewObjectID()
	if _, err := r.DB.Collection(colRestaurantes).InsertOne(ctx, rest); err != nil {
		return primitive.NilObjectID, err
	}
	return rest.ID, nil
}

func (r *MongoRepository) ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["nombre"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.TipoComida != "" {
		query["tipo_comida"] = filter.TipoComida
	}

	sortField := "nombre"
	if filter.SortBy == "ciudad" {
		sortField = "direccion.ciudad"
	}
	sort := bson.D{{Key: sortField, Value: sortDirection(filter.Desc)}}

	cursor, err := r.DB.Collection(colRestaurantes).Find(ctx, query, findOptions(filter.Page.Limit, filter.Page.Skip, sort))
	if err != nil {
		return nil, err
	}

	restaurants := []domain.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *MongoRepository) GetRestaurant(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.Collection(colRestaurantes).FindOne(ctx, bson.M{"_id": id}).Decode(&rest)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *MongoRepository) GetRestaurants(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.Restaurant, error) {
	cursor, err := r.DB.Collection(colRestaurantes).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var restaurants []domain.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]domain.Restaurant, len(restaurants))
	for _, rest := range restaurants {
		byID[rest.ID] = rest
	}
	return byID, nil
}

func (r *MongoRepository) UpdateRestaurant(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := r.DB.Collection(colRestaurantes).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) DeleteRestaurant(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colRestaurantes).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
