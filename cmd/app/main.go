package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cyralabs/cyra-shop-backend/internal/assistant"
	"github.com/cyralabs/cyra-shop-backend/internal/cart"
	"github.com/cyralabs/cyra-shop-backend/internal/category"
	"github.com/cyralabs/cyra-shop-backend/internal/config"
	"github.com/cyralabs/cyra-shop-backend/internal/flight"
	"github.com/cyralabs/cyra-shop-backend/internal/genai"
	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(checkMiddleware)

	// catalog: Postgres when configured, seeded in-memory otherwise
	var productRepo product.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		pg := product.NewPostgresRepository(db)
		if err := pg.EnsureSchema(product.SeedProducts()); err != nil {
			log.Fatalf("product schema: %v", err)
		}
		productRepo = pg
	} else {
		log.Printf("DATABASE_URL not set, using in-memory catalog")
		productRepo = product.NewInMemoryRepository(product.SeedProducts())
	}
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.SeedCategories()))

	// conversational assistant
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY not set, assistant replies will fall back to the apology path")
	}
	generator := genai.NewClient(cfg.GeminiAPIKey)
	// no capture device is bound on the server; camera sessions are owned by
	// kiosk deployments that inject a real device
	conversation := assistant.NewController(generator, productService, nil, nil)
	defer conversation.Close()
	assistantHandler := assistant.NewHandler(conversation)

	// cart + flight animations
	flights := flight.NewController(func(id int64) {
		fmt.Printf("[DEBUG] flight %d complete\n", id)
	})
	cartStore := cart.NewStore()
	cartHandler := cart.NewHandler(cartStore, productService, flights)

	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	assistantHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)

	// admin catalog mutations sit behind JWT; everything registered above
	// stays public
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() == fiber.MethodGet {
				return true
			}
			p := c.Path()
			return !strings.HasPrefix(p, "/api/v1/product")
		},
	}))
	productHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
