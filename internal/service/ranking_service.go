package service

import (
	"context"
	"errors"
	"math"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultTopRatedLimit = 10

// RankingService builds the best-rated report: reviews grouped per
// restaurant, averaged, ranked, then joined against the restaurant records.
// Groups whose restaurant was deleted are dropped (inner join semantics).
type RankingService struct {
	reviews     ReviewRepository
	restaurants RestaurantRepository
	cache       RankingCache
}

func NewRankingService(reviews ReviewRepository, restaurants RestaurantRepository, cache RankingCache) *RankingService {
	return &RankingService{reviews: reviews, restaurants: restaurants, cache: cache}
}

func (s *RankingService) TopRated(ctx context.Context, n int) ([]domain.RestaurantSummary, error) {
	if n <= 0 {
		n = DefaultTopRatedLimit
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetTopRated(ctx, n); ok {
			return cached, nil
		}
	}

	groups, err := s.reviews.TopRatedGroups(ctx, n)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RestaurantSummary, 0, len(groups))
	for _, group := range groups {
		rest, err := s.restaurants.GetRestaurant(ctx, group.RestauranteID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.RestaurantSummary{
			RestauranteID: group.RestauranteID.Hex(),
			Nombre:        rest.Nombre,
			TipoComida:    rest.TipoComida,
			Direccion:     rest.Direccion,
			Promedio:      math.Round(group.Promedio*100) / 100,
			Resenas:       group.Resenas,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetTopRated(ctx, n, summaries)
	}
	return summaries, nil
}

var _ RankingServiceInterface = (*RankingService)(nil)
