package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
)

func RegisterArticleRoutes(app *fiber.App) {
	app.Get("/articles", controllers.GetAllArticles)
	app.Get("/articles/:id", controllers.GetArticleByID)
}
