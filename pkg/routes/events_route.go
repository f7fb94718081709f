package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/pkg/middleware"
)

func RegisterEventRoutes(app *fiber.App) {
	event := app.Group("/events", middleware.JWTProtected())
	event.Post("/", controllers.CreateEvent)
	event.Get("/", controllers.GetEvents)
	event.Delete("/:id", controllers.DeleteEvent)
}
