package models

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID                   uuid.UUID            `json:"id" db:"id"`
	UserID               uuid.UUID            `json:"user_id" db:"user_id"`
	Name                 string               `json:"name" db:"name"`
	TargetDays           []string             `json:"target_days" db:"target_days"`
	StartDate            time.Time            `json:"start_date" db:"start_date"`
	CompletedDates       []string             `json:"completed_dates"`
	CompletionTimestamps map[string]time.Time `json:"completion_timestamps,omitempty"`
	Streak               int                  `json:"streak" db:"streak"`
	HighestStreak        int                  `json:"highest_streak" db:"highest_streak"`
	CreatedAt            time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at" db:"updated_at"`
}

type CreateHabitRequest struct {
	Name       string   `json:"name" validate:"required,lte=255"`
	TargetDays []string `json:"target_days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartDate  string   `json:"start_date,omitempty"`
}

type UpdateHabitRequest struct {
	Name       *string  `json:"name" validate:"omitempty,lte=255"`
	TargetDays []string `json:"target_days" validate:"omitempty,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

type ToggleCompletionRequest struct {
	Date string `json:"date" validate:"required"`
}

// ToggleResult reports the state of a habit after a completion toggle.
type ToggleResult struct {
	HabitID       uuid.UUID `json:"habit_id"`
	Date          string    `json:"date"`
	Completed     bool      `json:"completed"`
	Streak        int       `json:"streak"`
	HighestStreak int       `json:"highest_streak"`
}
