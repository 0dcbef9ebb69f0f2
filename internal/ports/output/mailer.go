package output

import (
	"context"

	"golang-connect-discord/internal/domain"
)

// Mailer interface - Output port
// Defines what the application needs from the outbound mail transport
type Mailer interface {
	// SendOrder composes and delivers the order notification mail,
	// including the image attachment when present
	SendOrder(ctx context.Context, order *domain.Order) error
}
