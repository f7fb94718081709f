package models

import "time"

// Article represents the articles table
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Author      *string   `json:"author,omitempty"`
	ReadMinutes *int      `json:"read_minutes,omitempty"`
	Content     *string   `json:"content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
