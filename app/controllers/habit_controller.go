package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/app/analytics"
	"github.com/habitflow/habitflow-backend/app/models"
	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

func CreateHabit(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateHabitRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		startDate, err = time.Parse(analytics.DateLayout, req.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format, use YYYY-MM-DD"})
		}
	}

	h := &models.Habit{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		TargetDays: req.TargetDays,
		StartDate:  startDate,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	hq := queries.HabitQueries{DB: database.DB}
	if err := hq.CreateHabit(h); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create habit"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Habit created", "habit": h})
}

func GetHabits(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	hq := queries.HabitQueries{DB: database.DB}
	habits, err := hq.GetHabitsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get habits"})
	}

	return c.Status(fiber.StatusOK).JSON(habits)
}

func GetHabit(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	hq := queries.HabitQueries{DB: database.DB}
	h, err := hq.GetHabitByID(habitID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Habit not found"})
	}

	return c.Status(fiber.StatusOK).JSON(h)
}

func UpdateHabit(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	req := &models.UpdateHabitRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hq := queries.HabitQueries{DB: database.DB}
	if err := hq.UpdateHabit(habitID, userID, req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Changing target days changes which days are scheduled, so the cached
	// streaks have to be recomputed from history.
	h, err := hq.GetHabitByID(habitID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reload habit"})
	}
	current, highest := analytics.ComputeStreaks(h, time.Now())
	if err := hq.UpdateStreaks(habitID, current, highest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update habit streaks"})
	}
	h.Streak = current
	h.HighestStreak = highest

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Habit updated", "habit": h})
}

func DeleteHabit(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	hq := queries.HabitQueries{DB: database.DB}
	if err := hq.DeleteHabit(habitID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Habit deleted"})
}

// ToggleCompletion flips a single date's completion for a habit: present
// becomes absent and vice versa, never an accumulating counter. Streaks are
// recomputed from the full history on every flip so removing a mid-streak
// completion rolls the cache back correctly.
func ToggleCompletion(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	req := &models.ToggleCompletionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	day, err := time.Parse(analytics.DateLayout, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, use YYYY-MM-DD"})
	}
	if day.After(now) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot complete a future date"})
	}

	hq := queries.HabitQueries{DB: database.DB}
	h, err := hq.GetHabitByID(habitID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Habit not found"})
	}

	updatedDates, completed := analytics.ToggleDate(h.CompletedDates, req.Date)
	if completed {
		if err := hq.AddCompletion(habitID, req.Date, now); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record completion"})
		}
	} else {
		if err := hq.RemoveCompletion(habitID, req.Date); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove completion"})
		}
	}

	h.CompletedDates = updatedDates
	current, highest := analytics.ComputeStreaks(h, now)
	if err := hq.UpdateStreaks(habitID, current, highest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update habit streaks"})
	}

	result := models.ToggleResult{
		HabitID:       habitID,
		Date:          req.Date,
		Completed:     completed,
		Streak:        current,
		HighestStreak: highest,
	}

	pushHabitEvent(userID, fiber.Map{
		"event":          "habit_toggled",
		"habit_id":       habitID,
		"habit_name":     h.Name,
		"date":           req.Date,
		"completed":      completed,
		"streak":         current,
		"highest_streak": highest,
	})

	return c.Status(fiber.StatusOK).JSON(result)
}

// HabitStats returns the full analytics summary scoped to one habit.
func HabitStats(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid habit id"})
	}

	timeRange, err := analytics.ParseTimeRange(c.Query("range"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid range, use week|month|quarter|year|all"})
	}

	hq := queries.HabitQueries{DB: database.DB}
	h, err := hq.GetHabitByID(habitID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Habit not found"})
	}

	summary := analytics.Summarize([]models.Habit{h}, timeRange, time.Now())
	return c.Status(fiber.StatusOK).JSON(summary)
}
