package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/analytics"
	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

// GetAnalyticsSummary computes the dashboard summary for all of the user's
// habits in one pass: completion rate, trend series, weekday ranking and
// per habit comparison all come from the same snapshot so the numbers agree
// with each other.
func GetAnalyticsSummary(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	timeRange, err := analytics.ParseTimeRange(c.Query("range"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid range, use week|month|quarter|year|all"})
	}

	hq := queries.HabitQueries{DB: database.DB}
	habits, err := hq.GetHabitsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get habits"})
	}

	summary := analytics.Summarize(habits, timeRange, time.Now())
	return c.Status(fiber.StatusOK).JSON(summary)
}
