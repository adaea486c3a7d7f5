package service

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) (primitive.ObjectID, error)
	ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error)
	GetRestaurants(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteRestaurant(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error)
	AddFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) (int64, error)
	RemoveFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) (int64, error)
	UserOrdersWithRestaurant(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (primitive.ObjectID, error)
	InsertMenuItems(ctx context.Context, items []domain.MenuItem) ([]primitive.ObjectID, error)
	ListMenuItems(ctx context.Context, restauranteID primitive.ObjectID, filter domain.MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (int64, error)
	SetMenuItemImage(ctx context.Context, id, imagenID primitive.ObjectID) (int64, error)
	ClearImageRef(ctx context.Context, imagenID primitive.ObjectID) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteOrders(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	UpdateOrdersStatus(ctx context.Context, restauranteID primitive.ObjectID, de, a string) (int64, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *domain.Review) (primitive.ObjectID, error)
	ListReviews(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error)
	GetReview(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) (int64, error)
	TopRatedGroups(ctx context.Context, n int) ([]domain.RatingGroup, error)
}

type ImageStore interface {
	Put(ctx context.Context, image domain.Image) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Image, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type RankingCache interface {
	GetTopRated(ctx context.Context, n int) ([]domain.RestaurantSummary, bool)
	SetTopRated(ctx context.Context, n int, summaries []domain.RestaurantSummary) error
	Invalidate(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) (primitive.ObjectID, error)
	List(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.RestaurantPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserServiceInterface interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) error
	ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.Restaurant, error)
	Orders(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, restauranteID primitive.ObjectID, item *domain.MenuItem) (primitive.ObjectID, error)
	List(ctx context.Context, restauranteID primitive.ObjectID, filter domain.MenuFilter) ([]domain.MenuItem, error)
	BulkCreate(ctx context.Context, restauranteID primitive.ObjectID, items []domain.MenuItem, images map[int]domain.Image) ([]primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.MenuItemPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AttachImage(ctx context.Context, id primitive.ObjectID, image domain.Image) (primitive.ObjectID, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) (primitive.ObjectID, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.OrderPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	BulkTransition(ctx context.Context, restauranteID primitive.ObjectID, de, a string) (int64, error)
	QRCode(ctx context.Context, id primitive.ObjectID) ([]byte, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) (primitive.ObjectID, error)
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ReviewPatch) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type RankingServiceInterface interface {
	TopRated(ctx context.Context, n int) ([]domain.RestaurantSummary, error)
}

type ImageServiceInterface interface {
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Image, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
