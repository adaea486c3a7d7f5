package service

import (
	"context"
	"fmt"
	"time"

	"restaurantes-api/internal/domain"

	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderService struct {
	repo      OrderRepository
	menu      MenuRepository
	publisher OrderPublisher
}

func NewOrderService(repo OrderRepository, menu MenuRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{repo: repo, menu: menu, publisher: publisher}
}

func (s *OrderService) itemLookup(ctx context.Context) domain.ItemLookup {
	return func(id primitive.ObjectID) (*domain.MenuItem, error) {
		return s.menu.GetMenuItem(ctx, id)
	}
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) (primitive.ObjectID, error) {
	if order.UsuarioID.IsZero() || order.RestauranteID.IsZero() || len(order.Pedido) == 0 {
		return primitive.NilObjectID, ErrInvalidOrder
	}
	for _, item := range order.Pedido {
		if item.Cantidad <= 0 {
			return primitive.NilObjectID, ErrInvalidQuantity
		}
	}

	if order.Estado == "" {
		order.Estado = domain.StatusPending
	}
	if err := domain.ValidateStatus(order.Estado); err != nil {
		return primitive.NilObjectID, err
	}

	order.Pedido, order.Total = domain.PriceOrder(order.Pedido, s.itemLookup(ctx))
	if order.Fecha.IsZero() {
		order.Fecha = time.Now().UTC()
	}

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:          "order_created",
		OrderID:       id.Hex(),
		RestauranteID: order.RestauranteID.Hex(),
		UsuarioID:     order.UsuarioID.Hex(),
		Estado:        order.Estado,
		Total:         order.Total,
	})
	return id, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

func (s *OrderService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

// Update replaces the line-item list wholesale when the patch carries one;
// there is no per-item patch semantics. The total is always recomputed from
// the new list.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, patch domain.OrderPatch) error {
	set := bson.M{}

	if patch.Estado != nil {
		if err := domain.ValidateStatus(*patch.Estado); err != nil {
			return err
		}
		set["estado"] = *patch.Estado
	}

	if patch.Pedido != nil {
		items := *patch.Pedido
		for _, item := range items {
			if item.Cantidad <= 0 {
				return ErrInvalidQuantity
			}
		}
		resolved, total := domain.PriceOrder(items, s.itemLookup(ctx))
		set["pedido"] = resolved
		set["total"] = total
	}

	if len(set) == 0 {
		_, err := s.repo.GetOrder(ctx, id)
		return translate(err)
	}

	matched, err := s.repo.UpdateOrder(ctx, id, set)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}

	if estado, ok := set["estado"]; ok {
		s.publish(ctx, domain.OrderEvent{
			Type:    "status_changed",
			OrderID: id.Hex(),
			Estado:  estado.(string),
		})
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrInvalidInput
	}
	deleted, err := s.repo.DeleteOrders(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNotFound
	}
	return deleted, nil
}

// BulkTransition moves every order of the restaurant in estado `de` to `a`.
// Repeating the call finds nothing left in `de` and reports zero.
func (s *OrderService) BulkTransition(ctx context.Context, restauranteID primitive.ObjectID, de, a string) (int64, error) {
	if err := domain.ValidateStatus(a); err != nil {
		return 0, err
	}
	modified, err := s.repo.UpdateOrdersStatus(ctx, restauranteID, de, a)
	if err != nil {
		return 0, err
	}
	if modified > 0 {
		s.publish(ctx, domain.OrderEvent{
			Type:          "status_changed_bulk",
			RestauranteID: restauranteID.Hex(),
			Estado:        a,
		})
	}
	return modified, nil
}

func (s *OrderService) QRCode(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	link := fmt.Sprintf("http://localhost/orden.html?orden_id=%s", order.ID.Hex())
	return qrcode.Encode(link, qrcode.Medium, 256)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	_ = s.publisher.PublishOrderEvent(ctx, event)
}

var _ OrderServiceInterface = (*OrderService)(nil)
