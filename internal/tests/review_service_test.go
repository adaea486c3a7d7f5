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

func TestReviewService_Create(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewRankingCache(t)

	svc := service.NewReviewService(repository, cache)

	ctx := context.Background()

	userID := primitive.NewObjectID()
	restID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success_invalidates_ranking_cache",
			review: &domain.Review{
				UsuarioID: userID, RestauranteID: restID, Puntaje: 5, Comentario: "Excelente",
			},
			prepareMocks: func() {
				repository.On("CreateReview", ctx, mock.Anything).Return(reviewID, nil).Once()
				cache.On("Invalidate", ctx).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "error_score_too_high",
			review: &domain.Review{
				UsuarioID: userID, RestauranteID: restID, Puntaje: 6,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidScore,
		},
		{
			name: "error_score_too_low",
			review: &domain.Review{
				UsuarioID: userID, RestauranteID: restID, Puntaje: 0,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidScore,
		},
		{
			name: "error_missing_references",
			review: &domain.Review{
				Puntaje: 4,
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidInput,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			_, err := svc.Create(ctx, testCase.review)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewRankingCache(t)

	svc := service.NewReviewService(repository, cache)

	ctx := context.Background()
	reviewID := primitive.NewObjectID()

	badScore := 9
	goodScore := 3

	err := svc.Update(ctx, reviewID, domain.ReviewPatch{Puntaje: &badScore})
	assert.ErrorIs(t, err, service.ErrInvalidScore)

	repository.On("UpdateReview", ctx, reviewID, mock.Anything).Return(int64(1), nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Once()

	err = svc.Update(ctx, reviewID, domain.ReviewPatch{Puntaje: &goodScore})
	assert.NoError(t, err)

	repository.On("UpdateReview", ctx, reviewID, mock.Anything).Return(int64(0), nil).Once()

	err = svc.Update(ctx, reviewID, domain.ReviewPatch{Puntaje: &goodScore})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewRankingCache(t)

	svc := service.NewReviewService(repository, cache)

	ctx := context.Background()
	reviewID := primitive.NewObjectID()

	repository.On("DeleteReview", ctx, reviewID).Return(int64(1), nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Once()
	assert.NoError(t, svc.Delete(ctx, reviewID))

	repository.On("DeleteReview", ctx, reviewID).Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.Delete(ctx, reviewID), service.ErrNotFound)
}
