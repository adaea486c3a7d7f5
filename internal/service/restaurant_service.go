package service

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRestaurantPageSize caps the limite query parameter on restaurant listings.
const MaxRestaurantPageSize = 100

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) (primitive.ObjectID, error) {
	if rest.Nombre == "" {
		return primitive.NilObjectID, ErrInvalidInput
	}
	if rest.TipoComida == nil {
		rest.TipoComida = []string{}
	}
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) List(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	if filter.Page.Limit <= 0 || filter.Page.Limit > MaxRestaurantPageSize {
		filter.Page.Limit = MaxRestaurantPageSize
	}
	return s.repo.ListRestaurants(ctx, filter)
}

func (s *RestaurantService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return rest, nil
}

func (s *RestaurantService) Update(ctx context.Context, id primitive.ObjectID, patch domain.RestaurantPatch) error {
	set := patch.SetFields()
	if len(set) == 0 {
		_, err := s.repo.GetRestaurant(ctx, id)
		return translate(err)
	}
	matched, err := s.repo.UpdateRestaurant(ctx, id, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RestaurantService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
