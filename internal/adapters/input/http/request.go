package http

type (
	// ClassicOrderRequest struct - HTTP request DTO for the age/description form
	ClassicOrderRequest struct {
		Age           *string `json:"age" validate:"required" form:"age"`
		Description   *string `json:"description" validate:"required" form:"description"`
		RulesAccepted *bool   `json:"rulesAccepted" validate:"required,eq=true" form:"rulesAccepted"`
	}

	// ExtendedOrderRequest struct - HTTP request DTO for the features/message/image form
	ExtendedOrderRequest struct {
		Features             *string `json:"features" validate:"required" form:"features"`
		OptionalMessage      *string `json:"optionalMessage" validate:"omitempty" form:"optionalMessage"`
		OptionalImageDataURI *string `json:"optionalImageDataUri" validate:"omitempty,startswith=data:image/" form:"optionalImageDataUri"`
	}
)
