package input

import (
	"context"

	"golang-connect-discord/internal/domain"
)

// OrderService interface - Input port (use case)
// Defines what the application can do with order submissions
type OrderService interface {
	// SubmitOrder validates the submitted form against the configured
	// schema, builds an order record for the given customer and relays
	// it through the mail transport
	SubmitOrder(ctx context.Context, customer domain.User, request domain.OrderRequest) (*domain.OrderReceipt, error)
}
