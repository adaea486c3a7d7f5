package service

import (
	"context"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mongodoc"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	repo        UserRepository
	restaurants RestaurantRepository
}

func NewUserService(repo UserRepository, restaurants RestaurantRepository) *UserService {
	return &UserService{repo: repo, restaurants: restaurants}
}

func (s *UserService) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Nombre == "" || user.Email == "" {
		return primitive.NilObjectID, ErrInvalidInput
	}
	id, err := s.repo.CreateUser(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateEmail
	}
	return id, err
}

func (s *UserService) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	return s.repo.ListUsers(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) error {
	set := patch.SetFields()
	if len(set) == 0 {
		_, err := s.repo.GetUser(ctx, id)
		return translate(err)
	}
	matched, err := s.repo.UpdateUser(ctx, id, set)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) AddFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) error {
	matched, err := s.repo.AddFavorite(ctx, userID, restauranteID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, restauranteID primitive.ObjectID) error {
	matched, err := s.repo.RemoveFavorite(ctx, userID, restauranteID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavorites resolves the user's favorite references, skipping restaurants
// that no longer exist.
func (s *UserService) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]domain.Restaurant, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	if len(user.Favoritos) == 0 {
		return []domain.Restaurant{}, nil
	}

	byID, err := s.restaurants.GetRestaurants(ctx, user.Favoritos)
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Restaurant, 0, len(user.Favoritos))
	for _, id := range user.Favoritos {
		if rest, ok := byID[id]; ok {
			favorites = append(favorites, rest)
		}
	}
	return favorites, nil
}

// Orders returns the user's orders with the restaurant name joined in, with
// every embedded ObjectID projected to its external hex form.
func (s *UserService) Orders(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, translate(err)
	}

	docs, err := s.repo.UserOrdersWithRestaurant(ctx, userID)
	if err != nil {
		return nil, err
	}

	projected := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		projected = append(projected, mongodoc.Project(doc))
	}
	return projected, nil
}

var _ UserServiceInterface = (*UserService)(nil)
