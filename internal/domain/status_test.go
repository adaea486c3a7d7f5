package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatus(t *testing.T) {
	for _, estado := range []string{StatusPending, StatusPreparing, StatusDelivered} {
		assert.NoError(t, ValidateStatus(estado))
	}

	for _, estado := range []string{"Shipped", "pending", "Cancelled", ""} {
		assert.ErrorIs(t, ValidateStatus(estado), ErrInvalidStatus)
	}
}
