package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// UnknownItemName is used when a line item references an articulo that no
// longer exists. A failed lookup degrades to this sentinel, it never fails
// the order.
const UnknownItemName = "Unknown"

type ItemLookup func(id primitive.ObjectID) (*MenuItem, error)

// PriceOrder resolves line-item names through lookup and recomputes the order
// total from the unit prices supplied in the payload. Client totals are never
// trusted.
func PriceOrder(items []LineItem, lookup ItemLookup) ([]LineItem, int) {
	resolved := make([]LineItem, 0, len(items))
	total := 0

	for _, item := range items {
		item.Nombre = UnknownItemName
		if lookup != nil {
			if articulo, err := lookup(item.ArticuloID); err == nil && articulo != nil {
				item.Nombre = articulo.Nombre
			}
		}
		total += item.Precio * item.Cantidad
		resolved = append(resolved, item)
	}

	return resolved, total
}
