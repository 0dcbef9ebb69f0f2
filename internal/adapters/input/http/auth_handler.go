package http

import (
	"errors"

	"golang-connect-discord/internal/domain"
	"golang-connect-discord/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

// Redirect query flags consumed by the client application
const (
	flagLoginSuccess = "?login=success"
	flagNoCode       = "?error=no_code"
	flagNoToken      = "?error=no_token"
	flagAuthFailed   = "?error=auth_failed"
)

// AuthHandler struct - Primary/Driving adapter for the OAuth login flow
type AuthHandler struct {
	srv       input.AuthService
	sessions  *session.Store
	clientURL string
}

// NewAuthHandler func - Creates new auth handler
func NewAuthHandler(srv input.AuthService, sessions *session.Store, clientURL string) *AuthHandler {
	if clientURL == "" {
		clientURL = "/"
	}

	return &AuthHandler{
		srv:       srv,
		sessions:  sessions,
		clientURL: clientURL,
	}
}

// Login func
/* redirect the browser to the provider authorization endpoint */
// Login godoc
// @Summary Start the OAuth login flow
// @Description Redirects to the Discord authorization endpoint
// @Tags AUTH
// @Success 302
// @Router /api/auth/login [get]
func (hdl *AuthHandler) Login(c *fiber.Ctx) error {
	return c.Redirect(hdl.srv.LoginURL(), fiber.StatusFound)
}

// Callback func
/* complete the authorization code flow */
// Callback godoc
// @Summary OAuth callback
// @Description Exchanges the authorization code, stores the identity in the session and redirects to the client
// @Tags AUTH
// @Success 302
// @Router /api/auth/callback [get]
// @param code query string false "authorization code"
func (hdl *AuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Redirect(hdl.clientURL+flagNoCode, fiber.StatusFound)
	}

	user, err := hdl.srv.HandleCallback(c.Context(), code)
	if err != nil {
		logrus.Errorln(err)
		if errors.Is(err, domain.ErrNoAccessToken) {
			return c.Redirect(hdl.clientURL+flagNoToken, fiber.StatusFound)
		}
		// Provider errors are collapsed to a generic flag so nothing leaks
		return c.Redirect(hdl.clientURL+flagAuthFailed, fiber.StatusFound)
	}

	sess, err := hdl.sessions.Get(c)
	if err != nil {
		// Session write failure is logged but does not block the login redirect
		logrus.Errorf("Failed to open session: %v", err)
		return c.Redirect(hdl.clientURL+flagLoginSuccess, fiber.StatusFound)
	}

	storeUser(sess, *user)
	if err := sess.Save(); err != nil {
		logrus.Errorf("Failed to save session: %v", err)
	}

	return c.Redirect(hdl.clientURL+flagLoginSuccess, fiber.StatusFound)
}

// CurrentUser func
/* session query, pure read */
// CurrentUser godoc
// @Summary Current session identity
// @Description Returns the logged in state and the identity when present
// @Tags AUTH
// @Success 200 {object} SessionResponse
// @Router /api/auth/user [get]
// @Produce json
func (hdl *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	sess, err := hdl.sessions.Get(c)
	if err != nil {
		logrus.Errorf("Failed to open session: %v", err)
		return c.Status(fiber.StatusOK).JSON(SessionResponse{LoggedIn: false})
	}

	user, ok := loadUser(sess)
	if !ok {
		return c.Status(fiber.StatusOK).JSON(SessionResponse{LoggedIn: false})
	}

	return c.Status(fiber.StatusOK).JSON(SessionResponse{
		LoggedIn: true,
		User: &UserResponse{
			ID:            user.ID,
			Username:      user.Username,
			Discriminator: user.Discriminator,
			Avatar:        user.AvatarURL,
			Email:         user.Email,
		},
	})
}

// Logout func
/* destroy the session, idempotent */
// Logout godoc
// @Summary Logout
// @Description Destroys the session and redirects to the client root
// @Tags AUTH
// @Success 302
// @Router /api/auth/logout [get]
func (hdl *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := hdl.sessions.Get(c)
	if err != nil {
		logrus.Errorf("Failed to open session: %v", err)
		return c.Redirect(hdl.clientURL, fiber.StatusFound)
	}

	if err := sess.Destroy(); err != nil {
		logrus.Errorf("Failed to destroy session: %v", err)
	}

	return c.Redirect(hdl.clientURL, fiber.StatusFound)
}
