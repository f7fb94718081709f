package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/pkg/middleware"
)

func RegisterAnalyticsRoutes(app *fiber.App) {
	analytics := app.Group("/analytics", middleware.JWTProtected())
	analytics.Get("/summary", controllers.GetAnalyticsSummary)
	analytics.Get("/motivation", controllers.GetMotivation)
}
