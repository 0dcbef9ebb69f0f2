package http

import (
	"errors"

	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/input"
	"golang-connect-discord/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

// OrderHandler struct - Primary/Driving adapter for order submissions
type OrderHandler struct {
	srv       input.OrderService
	sessions  *session.Store
	schema    domain.OrderSchema
	validator validator.Validator
}

// NewOrderHandler func - Creates new order handler for the configured form schema
func NewOrderHandler(srv input.OrderService, sessions *session.Store, schema domain.OrderSchema) *OrderHandler {
	return &OrderHandler{
		srv:       srv,
		sessions:  sessions,
		schema:    schema,
		validator: validator.New(),
	}
}

// SubmitOrder func
/* relay an order form as mail */
// SubmitOrder godoc
// @Summary Submit an order
// @Description Validates the order form against the session and relays it by mail
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} OrderResponse
// @Router /api/order [post]
// @Produce json
func (hdl *OrderHandler) SubmitOrder(c *fiber.Ctx) error {
	sess, err := hdl.sessions.Get(c)
	if err != nil {
		logrus.Errorf("Failed to open session: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: MsgNotLoggedIn})
	}

	user, ok := loadUser(sess)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: MsgNotLoggedIn})
	}

	request, parseErr := hdl.parseRequest(c)
	if parseErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: parseErr})
	}

	receipt, err := hdl.srv.SubmitOrder(c.Context(), user, *request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: MsgNotLoggedIn})
		case errors.Is(err, domain.ErrMissingRequiredField), errors.Is(err, domain.ErrInvalidImageData):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		default:
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgMailFailure})
		}
	}

	return c.Status(fiber.StatusOK).JSON(OrderResponse{Success: true, Message: receipt.Message})
}

// parseRequest parses and validates the body according to the configured
// schema and converts it to the domain request. A non-empty string return
// is the client-facing rejection message.
func (hdl *OrderHandler) parseRequest(c *fiber.Ctx) (*domain.OrderRequest, string) {
	switch hdl.schema {
	case domain.OrderSchemaExtended:
		var request ExtendedOrderRequest
		if err := c.BodyParser(&request); err != nil {
			logrus.Errorln(err)
			return nil, MsgInvalidBody
		}
		if err := hdl.validator.ValidateStruct(request); err != nil {
			return nil, validator.Message(err)
		}
		return &domain.OrderRequest{
			Features:        request.Features,
			OptionalMessage: request.OptionalMessage,
			ImageDataURI:    request.OptionalImageDataURI,
		}, ""

	default:
		var request ClassicOrderRequest
		if err := c.BodyParser(&request); err != nil {
			logrus.Errorln(err)
			return nil, MsgInvalidBody
		}
		if err := hdl.validator.ValidateStruct(request); err != nil {
			return nil, validator.Message(err)
		}
		return &domain.OrderRequest{
			Age:           request.Age,
			Description:   request.Description,
			RulesAccepted: request.RulesAccepted,
		}, ""
	}
}
