package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/models"
	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

// NotificationController carries the reminder scheduler built in main so the
// handlers can re-arm it when settings change. There is no package level
// scheduler on purpose.
type NotificationController struct {
	Scheduler *utils.ReminderScheduler
}

func NewNotificationController(s *utils.ReminderScheduler) *NotificationController {
	return &NotificationController{Scheduler: s}
}

func (nc *NotificationController) GetReminder(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	uq := queries.UserQueries{DB: database.DB}
	user, err := uq.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reminder_time":    user.ReminderTime,
		"reminder_enabled": user.ReminderEnabled,
		"scheduler_active": nc.Scheduler.Active(),
	})
}

func (nc *NotificationController) UpdateReminder(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.UpdateReminderRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	uq := queries.UserQueries{DB: database.DB}
	if err := uq.UpdateReminder(userID, req.Time, req.Enabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update reminder settings"})
	}

	if req.Enabled {
		if err := nc.Scheduler.Start(req.Time); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	} else {
		nc.Scheduler.Stop()
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "Reminder settings updated",
		"reminder_time":    req.Time,
		"reminder_enabled": req.Enabled,
	})
}
