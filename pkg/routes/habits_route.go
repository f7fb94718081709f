package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/pkg/middleware"
)

func RegisterHabitRoutes(app *fiber.App) {
	habit := app.Group("/habits", middleware.JWTProtected())
	habit.Post("/", controllers.CreateHabit)
	habit.Get("/", controllers.GetHabits)
	habit.Get("/:id", controllers.GetHabit)
	habit.Put("/:id", controllers.UpdateHabit)
	habit.Delete("/:id", controllers.DeleteHabit)
	habit.Post("/:id/toggle", controllers.ToggleCompletion)
	habit.Get("/:id/stats", controllers.HabitStats)
}
