package tests

import (
	"context"
	"testing"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mocks"
	"restaurantes-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUserService_Create(t *testing.T) {
	repository := mocks.NewUserRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewUserService(repository, restaurants)

	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.User{Nombre: "Ana"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	duplicate := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	repository.On("CreateUser", ctx, mock.Anything).Return(primitive.NilObjectID, duplicate).Once()

	_, err = svc.Create(ctx, &domain.User{Nombre: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, service.ErrDuplicateEmail)

	userID := primitive.NewObjectID()
	repository.On("CreateUser", ctx, mock.Anything).Return(userID, nil).Once()

	id, err := svc.Create(ctx, &domain.User{Nombre: "Ana", Email: "ana2@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, userID, id)
}

func TestUserService_ListFavorites(t *testing.T) {
	repository := mocks.NewUserRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewUserService(repository, restaurants)

	ctx := context.Background()

	userID := primitive.NewObjectID()
	firstID := primitive.NewObjectID()
	goneID := primitive.NewObjectID()
	lastID := primitive.NewObjectID()

	repository.On("GetUser", ctx, userID).Return(&domain.User{
		ID:        userID,
		Favoritos: []primitive.ObjectID{firstID, goneID, lastID},
	}, nil).Once()
	restaurants.On("GetRestaurants", ctx, []primitive.ObjectID{firstID, goneID, lastID}).
		Return(map[primitive.ObjectID]domain.Restaurant{
			firstID: {ID: firstID, Nombre: "Primero"},
			lastID:  {ID: lastID, Nombre: "Último"},
		}, nil).Once()

	favorites, err := svc.ListFavorites(ctx, userID)
	assert.NoError(t, err)

	// Favorite order is preserved and dangling references are skipped.
	assert.Len(t, favorites, 2)
	assert.Equal(t, "Primero", favorites[0].Nombre)
	assert.Equal(t, "Último", favorites[1].Nombre)
}

func TestUserService_Orders_ProjectsObjectIDs(t *testing.T) {
	repository := mocks.NewUserRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewUserService(repository, restaurants)

	ctx := context.Background()

	userID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	repository.On("GetUser", ctx, userID).Return(&domain.User{ID: userID}, nil).Once()
	repository.On("UserOrdersWithRestaurant", ctx, userID).Return([]bson.M{
		{"_id": orderID, "usuario_id": userID, "restaurante_nombre": "La Taquería", "total": 175},
	}, nil).Once()

	orders, err := svc.Orders(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, orderID.Hex(), orders[0]["_id"])
	assert.Equal(t, userID.Hex(), orders[0]["usuario_id"])
	assert.Equal(t, "La Taquería", orders[0]["restaurante_nombre"])
}

func TestUserService_Favorites(t *testing.T) {
	repository := mocks.NewUserRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	svc := service.NewUserService(repository, restaurants)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	restID := primitive.NewObjectID()

	repository.On("AddFavorite", ctx, userID, restID).Return(int64(1), nil).Once()
	assert.NoError(t, svc.AddFavorite(ctx, userID, restID))

	repository.On("AddFavorite", ctx, userID, restID).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.AddFavorite(ctx, userID, restID), service.ErrNotFound)

	repository.On("RemoveFavorite", ctx, userID, restID).Return(int64(1), nil).Once()
	assert.NoError(t, svc.RemoveFavorite(ctx, userID, restID))
}
