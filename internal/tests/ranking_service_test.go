package tests

import (
	"context"
	"testing"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mocks"
	"restaurantes-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRankingService_TopRated(t *testing.T) {
	reviews := mocks.NewReviewRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewRankingService(reviews, restaurants, nil)

	ctx := context.Background()

	bestID := primitive.NewObjectID()
	secondID := primitive.NewObjectID()

	reviews.On("TopRatedGroups", ctx, 5).Return([]domain.RatingGroup{
		{RestauranteID: bestID, Promedio: 4.666666666666667, Resenas: 3},
		{RestauranteID: secondID, Promedio: 4.0, Resenas: 8},
	}, nil).Once()
	restaurants.On("GetRestaurant", ctx, bestID).
		Return(&domain.Restaurant{ID: bestID, Nombre: "La Taquería", TipoComida: []string{"tacos"}}, nil).Once()
	restaurants.On("GetRestaurant", ctx, secondID).
		Return(&domain.Restaurant{ID: secondID, Nombre: "Pasta Bella"}, nil).Once()

	summaries, err := svc.TopRated(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	assert.Equal(t, "La Taquería", summaries[0].Nombre)
	assert.Equal(t, 4.67, summaries[0].Promedio)
	assert.Equal(t, 3, summaries[0].Resenas)
	assert.Equal(t, bestID.Hex(), summaries[0].RestauranteID)
	assert.Equal(t, "Pasta Bella", summaries[1].Nombre)
}

func TestRankingService_TopRated_DropsDeletedRestaurants(t *testing.T) {
	reviews := mocks.NewReviewRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewRankingService(reviews, restaurants, nil)

	ctx := context.Background()

	aliveID := primitive.NewObjectID()
	deletedID := primitive.NewObjectID()

	reviews.On("TopRatedGroups", ctx, 10).Return([]domain.RatingGroup{
		{RestauranteID: deletedID, Promedio: 5.0, Resenas: 2},
		{RestauranteID: aliveID, Promedio: 3.5, Resenas: 4},
	}, nil).Once()
	restaurants.On("GetRestaurant", ctx, deletedID).
		Return(nil, mongo.ErrNoDocuments).Once()
	restaurants.On("GetRestaurant", ctx, aliveID).
		Return(&domain.Restaurant{ID: aliveID, Nombre: "Sobreviviente"}, nil).Once()

	// n <= 0 falls back to the default limit.
	summaries, err := svc.TopRated(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Sobreviviente", summaries[0].Nombre)
}

func TestRankingService_TopRated_CacheHit(t *testing.T) {
	reviews := mocks.NewReviewRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	cache := mocks.NewRankingCache(t)

	svc := service.NewRankingService(reviews, restaurants, cache)

	ctx := context.Background()

	cached := []domain.RestaurantSummary{{Nombre: "Desde cache", Promedio: 4.5}}
	cache.On("GetTopRated", ctx, 3).Return(cached, true).Once()

	summaries, err := svc.TopRated(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, cached, summaries)
}

func TestRankingService_TopRated_CacheMissStoresResult(t *testing.T) {
	reviews := mocks.NewReviewRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	cache := mocks.NewRankingCache(t)

	svc := service.NewRankingService(reviews, restaurants, cache)

	ctx := context.Background()
	restID := primitive.NewObjectID()

	cache.On("GetTopRated", ctx, 3).Return(nil, false).Once()
	reviews.On("TopRatedGroups", ctx, 3).Return([]domain.RatingGroup{
		{RestauranteID: restID, Promedio: 4.2, Resenas: 5},
	}, nil).Once()
	restaurants.On("GetRestaurant", ctx, restID).
		Return(&domain.Restaurant{ID: restID, Nombre: "El Fogón"}, nil).Once()
	cache.On("SetTopRated", ctx, 3, mock.Anything).Return(nil).Once()

	summaries, err := svc.TopRated(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
}
