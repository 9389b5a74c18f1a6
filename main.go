package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"luma/appstate"
	"luma/config"
	"luma/database"
	adminRoutes "luma/routers/adminRoutes"
	authRoutes "luma/routers/authRoutes"
	certificateRoutes "luma/routers/certificateRoutes"
	courseRoutes "luma/routers/courseRoutes"
	orderRoutes "luma/routers/orderRoutes"
	quizRoutes "luma/routers/quizRoutes"
	todoRoutes "luma/routers/todoRoutes"
	"luma/storage"
	"luma/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	st, err := appstate.Load(config.AppConfig.AdminStateFile)
	if err != nil {
		log.Fatalf("Failed to load admin state: %v", err)
	}

	store := storage.NewClient()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app, store)
	orderRoutes.SetupOrderRoutes(app)
	todoRoutes.SetupTodoRoutes(app)
	adminRoutes.SetupAdminRoutes(app, store, st)

	utils.StartCleanupScheduler(database.Database.Db, store)

	// Catch up on expired marketing images missed while the instance was down
	go func() {
		if _, err := utils.PurgeExpiredMarketingImages(database.Database.Db, store); err != nil {
			log.Printf("Boot cleanup failed: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
