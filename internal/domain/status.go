package domain

import "errors"

const (
	StatusPending   = "Pending"
	StatusPreparing = "Preparing"
	StatusDelivered = "Delivered"
)

var ErrInvalidStatus = errors.New("invalid order status")

var orderStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusDelivered: true,
}

// ValidateStatus accepts only the canonical status set. Any status in the set
// may be assigned regardless of the current one; there is no transition graph.
func ValidateStatus(estado string) error {
	if !orderStatuses[estado] {
		return ErrInvalidStatus
	}
	return nil
}
