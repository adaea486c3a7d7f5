package service

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImageService struct {
	store ImageStore
	menu  MenuRepository
}

func NewImageService(store ImageStore, menu MenuRepository) *ImageService {
	return &ImageService{store: store, menu: menu}
}

func (s *ImageService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Image, error) {
	image, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return image, nil
}

// Delete removes the blob and detaches it from any articulo still holding
// the reference.
func (s *ImageService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return s.menu.ClearImageRef(ctx, id)
}

var _ ImageServiceInterface = (*ImageService)(nil)
