package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a plain calendar entry, unrelated to habit analytics.
type Event struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	EventDate time.Time `json:"date" db:"event_date"`
	EventTime string    `json:"time" db:"event_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateEventRequest struct {
	Name string `json:"name" validate:"required,lte=255"`
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required,lte=16"`
}
