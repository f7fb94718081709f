package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

var fallbackQuotes = []string{
	"Small steps every day add up to big results.",
	"You don't have to be perfect, you have to be consistent.",
	"A streak is built one checkmark at a time.",
	"Missing one day is a stumble. Missing two is a choice.",
	"Discipline is choosing what you want most over what you want now.",
	"The best time to start was yesterday. The next best time is today.",
	"Habits are the compound interest of self improvement.",
}

// GetMotivation returns a short motivational line for the dashboard. It asks
// the LLM with the user's current best streak as context and falls back to a
// built in rotation when the API is unavailable or unconfigured.
func GetMotivation(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	bestStreak := 0
	hq := queries.HabitQueries{DB: database.DB}
	if habits, err := hq.GetHabitsByUser(userID); err == nil {
		for _, h := range habits {
			if h.Streak > bestStreak {
				bestStreak = h.Streak
			}
		}
	}

	prompt := fmt.Sprintf(
		"Write one short motivational sentence for someone tracking daily habits. Their current best streak is %d days. Reply with the sentence only, no quotes.",
		bestStreak,
	)

	quote, err := utils.QueryGemini(prompt)
	if err != nil {
		quote = fallbackQuotes[time.Now().YearDay()%len(fallbackQuotes)]
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"quote": quote})
}
