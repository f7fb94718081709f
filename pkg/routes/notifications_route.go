package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/pkg/middleware"
)

// RegisterNotificationRoutes takes the controller built in main so the
// reminder endpoints share the one scheduler instance.
func RegisterNotificationRoutes(app *fiber.App, nc *controllers.NotificationController) {
	reminder := app.Group("/user/reminder", middleware.JWTProtected())
	reminder.Get("/", nc.GetReminder)
	reminder.Put("/", nc.UpdateReminder)

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		controllers.HabitSocket(c)
	}))
}
