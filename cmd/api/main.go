package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/lataberna/reservations-backend/configs"
	"github.com/lataberna/reservations-backend/database"
	"github.com/lataberna/reservations-backend/handlers"
	"github.com/lataberna/reservations-backend/jobs"
	"github.com/lataberna/reservations-backend/middleware"
	"github.com/lataberna/reservations-backend/notifications"
	"github.com/lataberna/reservations-backend/routes"
	"github.com/lataberna/reservations-backend/state"
	"github.com/lataberna/reservations-backend/store"
	"github.com/lataberna/reservations-backend/websocket"
	"github.com/robfig/cron/v3"
)

func main() {
	var st store.Store
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		db, err := database.Connect(dsn)
		if err != nil {
			log.Fatalf("🔥 Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("🔥 Failed to migrate database: %v", err)
		}
		st = store.NewGormStore(db)
		log.Println("🗄️  Storage: postgres")
	} else {
		st = store.NewFileStore("data.json")
		log.Println("🗄️  Storage: data.json (DATABASE_URL not set)")
	}

	appState := state.New(st)
	mailer := notifications.NewEmailService()

	hub := websocket.NewHub()
	go hub.Run()

	h := handlers.New(appState, mailer, hub)

	c := cron.New()
	c.AddFunc("0 9 * * *", func() { jobs.SendDailyDigest(appState, mailer) })
	go c.Start()
	log.Println("✅ Cron job for the daily digest scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Restaurant Reservations",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Persisted data is loaded on the first request; concurrent early
	// requests await the same load.
	app.Use(func(c *fiber.Ctx) error {
		appState.Ensure()
		return c.Next()
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the Restaurant Reservations API",
		})
	})

	routes.PublicRoutes(app, h, middleware.NewRateLimiter(5, 5))
	routes.AuthRoutes(app, h)
	routes.AdminRoutes(app, h, hub)

	port := config.Config("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
