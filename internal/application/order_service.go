package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderService struct - Application service implementing the order submission use case
type OrderService struct {
	mailer output.Mailer
	schema domain.OrderSchema
}

// NewOrderService func - Creates new order service accepting the configured form schema
func NewOrderService(mailer output.Mailer, schema domain.OrderSchema) *OrderService {
	if !schema.Valid() {
		schema = domain.OrderSchemaClassic
	}

	return &OrderService{
		mailer: mailer,
		schema: schema,
	}
}

// SubmitOrder func - Use case: Validate the submitted form, build the order
// record from the session identity and hand it to the mail transport.
// The order is never persisted - it is fully consumed into the outbound mail.
func (s *OrderService) SubmitOrder(ctx context.Context, customer domain.User, request domain.OrderRequest) (*domain.OrderReceipt, error) {
	if !customer.LoggedIn() {
		return nil, domain.ErrNotLoggedIn
	}

	order := &domain.Order{
		Reference:   uuid.New(),
		Customer:    customer,
		SubmittedAt: time.Now(),
	}

	switch s.schema {
	case domain.OrderSchemaExtended:
		features, err := requiredField("features", request.Features)
		if err != nil {
			return nil, err
		}
		order.Features = features
		order.OptionalMessage = trimmed(request.OptionalMessage)

		if uri := trimmed(request.ImageDataURI); uri != "" {
			attachment, err := domain.ParseImageDataURI(uri)
			if err != nil {
				return nil, err
			}
			order.Attachment = attachment
		}

	default:
		age, err := requiredField("age", request.Age)
		if err != nil {
			return nil, err
		}
		description, err := requiredField("description", request.Description)
		if err != nil {
			return nil, err
		}
		if request.RulesAccepted == nil || !*request.RulesAccepted {
			return nil, fmt.Errorf("%w: rulesAccepted", domain.ErrMissingRequiredField)
		}
		order.Age = age
		order.Description = description
		order.RulesAccepted = true
	}

	if err := s.mailer.SendOrder(ctx, order); err != nil {
		logrus.Errorf("Failed to deliver order %s: %v", order.Reference, err)
		return nil, fmt.Errorf("failed to deliver order mail: %w", err)
	}

	logrus.Infof("Order %s relayed for %s", order.Reference, customer.DisplayTag())

	return &domain.OrderReceipt{
		Reference: order.Reference,
		Message:   "Order submitted successfully",
	}, nil
}

// requiredField trims the field and rejects missing or empty values
func requiredField(name string, value *string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, name)
	}
	trimmedValue := strings.TrimSpace(*value)
	if trimmedValue == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, name)
	}
	return trimmedValue, nil
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
