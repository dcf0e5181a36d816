package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tidemart/storefront-backend/internal/cart"
	"github.com/tidemart/storefront-backend/internal/config"
	"github.com/tidemart/storefront-backend/internal/contact"
	"github.com/tidemart/storefront-backend/internal/order"
	"github.com/tidemart/storefront-backend/internal/product"
	"github.com/tidemart/storefront-backend/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	store := newStore(cfg)

	// cart events drive notifications; here the subscriber is the log
	events := cart.NewEvents()
	events.Subscribe(func(ev cart.Event) {
		log.Info().Str("event", ev.Name).Str("item", ev.Item).Msg("cart event")
	})

	cartService := cart.NewService(store, events)
	orderService := order.NewService(order.NewStoreRepository(store), cartService)
	contactService := contact.NewService(contact.NewStoreRepository(store))
	productHandler := product.NewHandler(product.NewService(product.NewInMemoryRepository(product.DefaultCatalog())))

	// the catalog is public; everything session-scoped sits behind the
	// session cookie
	productHandler.RegisterPublicRoutes(app)

	app.Use(session.Ensure(cfg.JWTSecret, cfg.SessionTTL))
	app.Use(jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + session.CookieName,
	}))

	cart.NewHandler(cartService).RegisterRoutes(app)
	order.NewHandler(orderService).RegisterRoutes(app)
	contact.NewHandler(contactService).RegisterRoutes(app)

	log.Info().Str("addr", cfg.Addr).Msg("starting storefront backend")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newStore(cfg config.Config) session.Store {
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	return session.NewRedisStore(client, cfg.SessionTTL)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Info().
		Str("method", c.Method()).
		Str("path", c.OriginalURL()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("request")
	return err
}
