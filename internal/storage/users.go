package storage

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *MongoRepository) CreateUser(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	if user.Favoritos == nil {
		user.Favoritos = []primitive.ObjectID{}
	}
	if _, err := r.DB.Collection(colUsuarios).InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *MongoRepository) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"nombre": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	sortField := "nombre"
	if filter.SortBy == "email" {
		sortField = "email"
	}
	sort := bson.D{{Key: sortField, Value: sortDirection(filter.Desc)}}

	cursor, err := r.DB.Collection(colUsuarios).Find(ctx, query, findOptions(filter.Page.Limit, filter.Page.Skip, sort))
	if err != nil {
		return nil, err
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoRepository) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	if err := r.DB.Collection(colUsuarios).FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := r.DB.Collection(colUsuarios).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colUsuarios).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoRepository) AddFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colUsuarios).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favoritos": restauranteID}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) RemoveFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colUsuarios).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favoritos": restauranteID}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// UserOrdersWithRestaurant returns the user's orders with the restaurant name
// joined in. Orders whose restaurant was deleted keep an empty name.
func (r *MongoRepository) UserOrdersWithRestaurant(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"usuario_id": userID}},
		{"$lookup": bson.M{
			"from":         colRestaurantes,
			"localField":   "restaurante_id",
			"foreignField": "_id",
			"as":           "restaurante",
		}},
		{"$unwind": bson.M{"path": "$restaurante", "preserveNullAndEmptyArrays": true}},
		{"$addFields": bson.M{"restaurante_nombre": "$restaurante.nombre"}},
		{"$project": bson.M{"restaurante": 0}},
		{"$sort": bson.M{"fecha": -1}},
	}

	cursor, err := r.DB.Collection(colOrdenes).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
