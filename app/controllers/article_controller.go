package controllers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
)

func GetAllArticles(c *fiber.Ctx) error {
	db := database.DB
	if db == nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "database not initialized"})
	}

	articles, err := queries.GetAllArticles(db)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(articles)
}

func GetArticleByID(c *fiber.Ctx) error {
	db := database.DB
	if db == nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "database not initialized"})
	}

	article, err := queries.GetArticleByID(db, c.Params("id"))
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "article not found"})
	}
	return c.JSON(article)
}
