package storage

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *MongoRepository) CreateReview(ctx context.Context, review *domain.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	if _, err := r.DB.Collection(colResenas).InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, err
	}
	return review.ID, nil
}

func (r *MongoRepository) ListReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error) {
	query := bson.M{}
	if filter.UsuarioID != nil {
		query["usuario_id"] = *filter.UsuarioID
	}
	if filter.RestauranteID != nil {
		query["restaurante_id"] = *filter.RestauranteID
	}
	if filter.Puntaje != nil {
		query["puntaje"] = *filter.Puntaje
	}

	sort := bson.D{{Key: "fecha", Value: -1}}
	cursor, err := r.DB.Collection(colResenas).Find(ctx, query, findOptions(filter.Page.Limit, filter.Page.Skip, sort))
	if err != nil {
		return nil, err
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoRepository) GetReview(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
	var review domain.Review
	if err := r.DB.Collection(colResenas).FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *MongoRepository) UpdateReview(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := r.DB.Collection(colResenas).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) DeleteReview(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colResenas).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// TopRatedGroups groups reviews by restaurant and returns the n best average
// scores. The restaurant records themselves are joined in by the service so
// stale groups can be dropped.
func (r *MongoRepository) TopRatedGroups(ctx context.Context, n int) ([]domain.RatingGroup, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":      "$restaurante_id",
			"promedio": bson.M{"$avg": "$puntaje"},
			"resenas":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"promedio": -1}},
		{"$limit": n},
	}

	cursor, err := r.DB.Collection(colResenas).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	groups := []domain.RatingGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
