package main

import (
	"assignment-service/internal/config"
	"assignment-service/internal/events"
	"assignment-service/internal/handlers"
	"assignment-service/internal/logger"
	"assignment-service/internal/metrics"
	"assignment-service/internal/models"
	"assignment-service/internal/repository"
	"assignment-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	log := logger.New()
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Infof("No .env file found, relying on process environment")
	}

	cfg := InitConfig(log)
	db := ConnectDatabase(cfg, log)
	MigrateDatabase(db, log)
	publisher := InitPublisher(cfg, log)
	defer publisher.Close()

	assignmentRepo := repository.NewAssignmentRepository(db)
	assignmentService := services.NewAssignmentService(assignmentRepo, publisher, log)

	app := fiber.New()

	// Register Prometheus metrics endpoint and per-request collection
	app.Use(metrics.NewMetrics().Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Connectivity probe kept from the original deployment
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON("Server API is working 🚀")
	})

	// Set up routes for assignment CRUD operations
	h := handlers.NewAssignmentHandler(assignmentService, log)
	app.Get("/assignments", h.ListAssignments)
	app.Get("/assignments/:id", h.GetAssignment)
	app.Post("/assignments", h.CreateAssignment)
	app.Put("/assignments/:id", h.UpdateAssignment)
	app.Delete("/assignments/:id", h.DeleteAssignment)

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	port := cfg.AppPort
	log.Infof("Server listening on port %s", port)
	log.Fatalf("%v", app.Listen(":"+port))
}

func InitConfig(log *logger.Logger) *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB, log *logger.Logger) {
	err := db.AutoMigrate(&models.Assignment{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitPublisher(cfg *config.Config, log *logger.Logger) events.Publisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		log.Infof("Event publishing disabled: no Kafka brokers configured")
		return events.NoopPublisher{}
	}
	log.Infof("Publishing assignment events to topic %s", cfg.KafkaTopic)
	return events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
}
