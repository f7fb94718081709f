package models

import (
	"time"

	"github.com/google/uuid"
)

type SignUp struct {
	Email    string `json:"email" validate:"required,email,lte=255"`
	Username string `json:"username" validate:"required,lte=255"`
	Password string `json:"password" validate:"required,gte=8,lte=255"`
	Avatar   string `json:"avatar" validate:"omitempty,lte=8"`
}

type SignIn struct {
	Email    string `json:"email" validate:"required,email,lte=255"`
	Password string `json:"password" validate:"required,lte=255"`
}

type VerifyOTP struct {
	Email string `json:"email" validate:"required,email,lte=255"`
	OTP   string `json:"otp" validate:"required,len=4"`
}

type RefreshToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
