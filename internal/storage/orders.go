package storage

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *MongoRepository) CreateOrder(ctx context.Context, order *domain.Order) (primitive.ObjectID, error) {
	order.ID = primitive.NewObjectID()
	if _, err := r.DB.Collection(colOrdenes).InsertOne(ctx, order); err != nil {
		return primitive.NilObjectID, err
	}
	return order.ID, nil
}

func (r *MongoRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := bson.M{}
	if filter.UsuarioID != nil {
		query["usuario_id"] = *filter.UsuarioID
	}
	if filter.RestauranteID != nil {
		query["restaurante_id"] = *filter.RestauranteID
	}
	if filter.Estado != "" {
		query["estado"] = filter.Estado
	}
	if filter.Desde != nil || filter.Hasta != nil {
		fecha := bson.M{}
		if filter.Desde != nil {
			fecha["$gte"] = *filter.Desde
		}
		if filter.Hasta != nil {
			fecha["$lte"] = *filter.Hasta
		}
		query["fecha"] = fecha
	}

	sort := bson.D{{Key: "fecha", Value: -1}}
	cursor, err := r.DB.Collection(colOrdenes).Find(ctx, query, findOptions(filter.Page.Limit, filter.Page.Skip, sort))
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoRepository) GetOrder(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.Collection(colOrdenes).FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoRepository) UpdateOrder(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := r.DB.Collection(colOrdenes).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoRepository) DeleteOrder(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colOrdenes).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoRepository) DeleteOrders(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	result, err := r.DB.Collection(colOrdenes).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// UpdateOrdersStatus moves every order of the restaurant currently in estado
// `de` to estado `a` and reports how many documents actually changed.
func (r *MongoRepository) UpdateOrdersStatus(ctx context.Context, restauranteID primitive.ObjectID, de, a string) (int64, error) {
	result, err := r.DB.Collection(colOrdenes).UpdateMany(ctx,
		bson.M{"restaurante_id": restauranteID, "estado": de},
		bson.M{"$set": bson.M{"estado": a}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
