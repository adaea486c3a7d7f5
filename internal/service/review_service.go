package service

import (
	"context"
	"time"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService struct {
	repo  ReviewRepository
	cache RankingCache
}

func NewReviewService(repo ReviewRepository, cache RankingCache) *ReviewService {
	return &ReviewService{repo: repo, cache: cache}
}

func (s *ReviewService) Create(ctx context.Context, review *domain.Review) (primitive.ObjectID, error) {
	if review.UsuarioID.IsZero() || review.RestauranteID.IsZero() {
		return primitive.NilObjectID, ErrInvalidInput
	}
	if review.Puntaje < 1 || review.Puntaje > 5 {
		return primitive.NilObjectID, ErrInvalidScore
	}
	if review.Fecha.IsZero() {
		review.Fecha = time.Now().UTC()
	}

	id, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *ReviewService) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx, filter)
}

func (s *ReviewService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Review, error) {
	review, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id primitive.ObjectID, patch domain.ReviewPatch) error {
	if patch.Puntaje != nil && (*patch.Puntaje < 1 || *patch.Puntaje > 5) {
		return ErrInvalidScore
	}
	set := patch.SetFields()
	if len(set) == 0 {
		_, err := s.repo.GetReview(ctx, id)
		return translate(err)
	}
	matched, err := s.repo.UpdateReview(ctx, id, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.DeleteReview(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReviewService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
