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
)

func TestOrderService_Create(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	publisher := mocks.NewOrderPublisher(t)

	svc := service.NewOrderService(repository, menu, publisher)

	ctx := context.Background()

	userID := primitive.NewObjectID()
	restID := primitive.NewObjectID()
	tacoID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	tests := []struct {
		name          string
		order         *domain.Order
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success_defaults_and_pricing",
			order: &domain.Order{
				UsuarioID:     userID,
				RestauranteID: restID,
				Pedido: []domain.LineItem{
					{ArticuloID: tacoID, Cantidad: 2, Precio: 50},
				},
				Total: 99999,
			},
			prepareMocks: func() {
				menu.On("GetMenuItem", ctx, tacoID).
					Return(&domain.MenuItem{ID: tacoID, Nombre: "Tacos al pastor", Precio: 50}, nil).Once()
				repository.On("CreateOrder", ctx, mock.Anything).Return(orderID, nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "error_empty_pedido",
			order: &domain.Order{
				UsuarioID:     userID,
				RestauranteID: restID,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name: "error_zero_quantity",
			order: &domain.Order{
				UsuarioID:     userID,
				RestauranteID: restID,
				Pedido:        []domain.LineItem{{ArticuloID: tacoID, Cantidad: 0, Precio: 50}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidQuantity,
		},
		{
			name: "error_unknown_status",
			order: &domain.Order{
				UsuarioID:     userID,
				RestauranteID: restID,
				Estado:        "Shipped",
				Pedido:        []domain.LineItem{{ArticuloID: tacoID, Cantidad: 1, Precio: 50}},
			},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidStatus,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			_, err := svc.Create(ctx, testCase.order)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_Create_RecomputesTotalAndDefaultsStatus(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)

	svc := service.NewOrderService(repository, menu, nil)

	ctx := context.Background()
	tacoID := primitive.NewObjectID()

	menu.On("GetMenuItem", ctx, tacoID).
		Return(&domain.MenuItem{ID: tacoID, Nombre: "Tacos al pastor", Precio: 50}, nil).Once()
	repository.On("CreateOrder", ctx, mock.MatchedBy(func(order *domain.Order) bool {
		return order.Estado == domain.StatusPending &&
			order.Total == 100 &&
			order.Pedido[0].Nombre == "Tacos al pastor" &&
			!order.Fecha.IsZero()
	})).Return(primitive.NewObjectID(), nil).Once()

	_, err := svc.Create(ctx, &domain.Order{
		UsuarioID:     primitive.NewObjectID(),
		RestauranteID: primitive.NewObjectID(),
		Pedido:        []domain.LineItem{{ArticuloID: tacoID, Cantidad: 2, Precio: 50}},
		Total:         1,
	})
	assert.NoError(t, err)
}

func TestOrderService_Update(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	publisher := mocks.NewOrderPublisher(t)

	svc := service.NewOrderService(repository, menu, publisher)

	ctx := context.Background()
	orderID := primitive.NewObjectID()

	delivered := domain.StatusDelivered
	shipped := "Shipped"

	tests := []struct {
		name          string
		patch         domain.OrderPatch
		prepareMocks  func()
		expectedError error
	}{
		{
			name:  "success_set_delivered",
			patch: domain.OrderPatch{Estado: &delivered},
			prepareMocks: func() {
				repository.On("UpdateOrder", ctx, orderID, mock.Anything).Return(int64(1), nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_unknown_status",
			patch:         domain.OrderPatch{Estado: &shipped},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidStatus,
		},
		{
			name:  "error_not_found",
			patch: domain.OrderPatch{Estado: &delivered},
			prepareMocks: func() {
				repository.On("UpdateOrder", ctx, orderID, mock.Anything).Return(int64(0), nil).Once()
			},
			expectedError: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Update(ctx, orderID, testCase.patch)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_BulkTransition(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	publisher := mocks.NewOrderPublisher(t)

	svc := service.NewOrderService(repository, menu, publisher)

	ctx := context.Background()
	restID := primitive.NewObjectID()

	repository.On("UpdateOrdersStatus", ctx, restID, domain.StatusPending, domain.StatusPreparing).
		Return(int64(3), nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

	modified, err := svc.BulkTransition(ctx, restID, domain.StatusPending, domain.StatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), modified)

	// Second run finds nothing left in the source status and publishes nothing.
	repository.On("UpdateOrdersStatus", ctx, restID, domain.StatusPending, domain.StatusPreparing).
		Return(int64(0), nil).Once()

	modified, err = svc.BulkTransition(ctx, restID, domain.StatusPending, domain.StatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	_, err = svc.BulkTransition(ctx, restID, domain.StatusPending, "Shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderService_DeleteMany(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)

	svc := service.NewOrderService(repository, menu, nil)

	ctx := context.Background()
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	_, err := svc.DeleteMany(ctx, nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	repository.On("DeleteOrders", ctx, ids).Return(int64(0), nil).Once()
	_, err = svc.DeleteMany(ctx, ids)
	assert.ErrorIs(t, err, service.ErrNotFound)

	repository.On("DeleteOrders", ctx, ids).Return(int64(2), nil).Once()
	deleted, err := svc.DeleteMany(ctx, ids)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
