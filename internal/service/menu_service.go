package service

import (
	"context"

	"restaurantes-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuService struct {
	repo   MenuRepository
	images ImageStore
}

func NewMenuService(repo MenuRepository, images ImageStore) *MenuService {
	return &MenuService{repo: repo, images: images}
}

func (s *MenuService) Create(ctx context.Context, restauranteID primitive.ObjectID, item *domain.MenuItem) (primitive.ObjectID, error) {
	if item.Nombre == "" || item.Precio < 0 {
		return primitive.NilObjectID, ErrInvalidInput
	}
	item.RestauranteID = restauranteID
	if item.Tipo == nil {
		item.Tipo = []string{}
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) List(ctx context.Context, restauranteID primitive.ObjectID, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, restauranteID, filter)
}

// BulkCreate inserts a batch of articulos, storing any uploaded images first
// so the inserted documents already carry their imagen_id reference. The two
// steps are not atomic: a failed insert can leave orphaned blobs behind.
func (s *MenuService) BulkCreate(ctx context.Context, restauranteID primitive.ObjectID, items []domain.MenuItem, images map[int]domain.Image) ([]primitive.ObjectID, error) {
	if len(items) == 0 {
		return nil, ErrInvalidInput
	}
	for i := range items {
		if items[i].Nombre == "" || items[i].Precio < 0 {
			return nil, ErrInvalidInput
		}
		items[i].RestauranteID = restauranteID
		if items[i].Tipo == nil {
			items[i].Tipo = []string{}
		}
	}

	for idx, image := range images {
		if idx < 0 || idx >= len(items) {
			continue
		}
		imagenID, err := s.images.Put(ctx, image)
		if err != nil {
			return nil, err
		}
		id := imagenID
		items[idx].ImagenID = &id
	}

	return s.repo.InsertMenuItems(ctx, items)
}

func (s *MenuService) Get(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id primitive.ObjectID, patch domain.MenuItemPatch) error {
	if patch.Precio != nil && *patch.Precio < 0 {
		return ErrInvalidInput
	}
	set := patch.SetFields()
	if len(set) == 0 {
		_, err := s.repo.GetMenuItem(ctx, id)
		return translate(err)
	}
	matched, err := s.repo.UpdateMenuItem(ctx, id, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachImage stores the blob, points the articulo at it and then drops the
// previous blob best effort.
func (s *MenuService) AttachImage(ctx context.Context, id primitive.ObjectID, image domain.Image) (primitive.ObjectID, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}

	imagenID, err := s.images.Put(ctx, image)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if _, err := s.repo.SetMenuItemImage(ctx, id, imagenID); err != nil {
		return primitive.NilObjectID, err
	}

	if item.ImagenID != nil {
		_ = s.images.Delete(ctx, *item.ImagenID)
	}
	return imagenID, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
