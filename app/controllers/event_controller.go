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

func CreateEvent(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	req := &models.CreateEventRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eventDate, err := time.Parse(analytics.DateLayout, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, use YYYY-MM-DD"})
	}

	e := &models.Event{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		EventDate: eventDate,
		EventTime: req.Time,
		CreatedAt: time.Now(),
	}

	eq := queries.EventQueries{DB: database.DB}
	if err := eq.CreateEvent(e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(fiber.StatusCreated).JSON(e)
}

func GetEvents(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	eq := queries.EventQueries{DB: database.DB}

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(analytics.DateLayout, date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, use YYYY-MM-DD"})
		}
		events, err := eq.GetEventsByDate(userID, date)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get events"})
		}
		return c.Status(fiber.StatusOK).JSON(events)
	}

	events, err := eq.GetEventsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get events"})
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

func DeleteEvent(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	eq := queries.EventQueries{DB: database.DB}
	if err := eq.DeleteEvent(eventID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Event deleted"})
}
