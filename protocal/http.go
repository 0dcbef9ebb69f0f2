package protocal

import (
	"crypto/sha256"
	"encoding/base64"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"golang-connect-discord/configs"
	httpAdapter "golang-connect-discord/internal/adapters/input/http"
	"golang-connect-discord/internal/adapters/output/discord"
	"golang-connect-discord/internal/adapters/output/memory"
	"golang-connect-discord/internal/adapters/output/smtp"
	"golang-connect-discord/internal/application"
	"golang-connect-discord/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

const defaultSessionTTL = 24 * time.Hour

// cookieKey derives the base64 encoded 32 byte AES key the cookie encryption
// middleware expects from the configured session secret, which is an
// arbitrary operator-chosen string
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logrus.Info(conf.App.Env)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	if conf.Session.Secret != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{
			Key: cookieKey(conf.Session.Secret),
		}))
	}

	ttl := time.Duration(conf.Session.TTLHours) * time.Hour
	if conf.Session.TTLHours <= 0 {
		ttl = defaultSessionTTL
	}
	sessionStore := session.New(session.Config{
		Storage:        memory.NewSessionStorage(),
		Expiration:     ttl,
		KeyLookup:      "cookie:order_session",
		CookieHTTPOnly: true,
		CookieSecure:   conf.App.Env == "production",
	})

	schema := domain.OrderSchema(conf.Order.Schema)
	if !schema.Valid() {
		schema = domain.OrderSchemaClassic
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters (OAuth client, mail transport)
	oauthClient := discord.NewOAuthClientAdapter(conf.Discord)
	mailer, err := smtp.NewMailerAdapter(conf.Mail)
	if err != nil {
		logrus.Fatalf("Failed to create SMTP mailer: %v", err)
	}
	// Application services (use cases)
	authSrv := application.NewAuthService(oauthClient)
	orderSrv := application.NewOrderService(mailer, schema)
	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New()
	authHdl := httpAdapter.NewAuthHandler(authSrv, sessionStore, conf.App.ClientURL)
	orderHdl := httpAdapter.NewOrderHandler(orderSrv, sessionStore, schema)

	app.Get("/health", hdl.HealthCheck)

	auth := app.Group("/api/auth")
	{
		auth.Get("/login", authHdl.Login)
		auth.Get("/callback", authHdl.Callback)
		auth.Get("/user", authHdl.CurrentUser)
		auth.Get("/logout", authHdl.Logout)
	}

	api := app.Group("/api")
	{
		api.Post("/order", orderHdl.SubmitOrder)
	}

	err = app.Listen(":" + conf.App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", conf.App.Port)
	return nil
}
