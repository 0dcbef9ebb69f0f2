package domain

import "github.com/google/uuid"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// OrderRequest struct - Domain request DTO carrying the union of both
	// order form schemas. Which fields are required depends on the
	// configured OrderSchema.
	OrderRequest struct {
		Age             *string
		Description     *string
		RulesAccepted   *bool
		Features        *string
		OptionalMessage *string
		ImageDataURI    *string
	}

	// OrderReceipt struct - Domain response DTO for an accepted order
	OrderReceipt struct {
		Reference uuid.UUID
		Message   string
	}
)
