package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"membersite/internal/config"
	"membersite/internal/db"
	"membersite/internal/handlers"
	"membersite/internal/logging"
	"membersite/internal/session"
	"membersite/internal/store"
	"membersite/web"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	appLog := logging.New(cfg.LogLevel)

	mongoDB, err := db.Connect(cfg.MongoURI(), cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	appLog.Info("mongodb connected", "database", cfg.MongoDatabase)

	users := store.NewMongoStore(mongoDB)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongodb indexes: %v", err)
	}
	cancel()

	sessions := session.New(session.NewMongoStorage(cfg.MongoURI(), cfg.MongoDatabase))

	engine := html.NewFileSystem(http.FS(web.Views), ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		// Form values and path params are retained by the stores past the
		// request, so they must not point into recycled fasthttp buffers.
		Immutable: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.SessionSecret}))
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(web.Static),
		PathPrefix: "static",
	}))

	srv := handlers.NewServer(users, sessions, appLog)
	srv.RegisterRoutes(app)

	appLog.Info("server listening", "addr", cfg.Addr())
	log.Fatal(app.Listen(cfg.Addr()))
}
