package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/routes"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000, http://localhost:5173, https://habitflow.app",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HabitFlow API")
	})

	_, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	notifier := utils.NewNotifier()
	scheduler := utils.NewReminderScheduler(notifier)
	controllers.UseNotifier(notifier)

	// Restore the reminder schedule from persisted settings so a restart
	// does not silently drop it.
	uq := queries.UserQueries{DB: database.DB}
	if reminderUsers, err := uq.GetReminderUsers(); err == nil && len(reminderUsers) > 0 {
		if err := scheduler.Start(reminderUsers[0].ReminderTime); err != nil {
			log.Printf("event=reminder_restore_failed err=%v", err)
		}
	}

	routes.RegisterUserRoutes(app)
	routes.RegisterHabitRoutes(app)
	routes.RegisterAnalyticsRoutes(app)
	routes.RegisterEventRoutes(app)
	routes.RegisterArticleRoutes(app)
	routes.RegisterNotificationRoutes(app, controllers.NewNotificationController(scheduler))

	log.Fatal(app.Listen(":8000"))
}
