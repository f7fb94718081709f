package controllers

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitflow/habitflow-backend/app/models"
	"github.com/habitflow/habitflow-backend/app/queries"
	"github.com/habitflow/habitflow-backend/pkg/database"
	"github.com/habitflow/habitflow-backend/pkg/utils"
)

var validate = validator.New()

func UserSignUp(c *fiber.Ctx) error {
	signUp := &models.SignUp{}
	if err := c.BodyParser(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	existing, err := userQueries.GetUserByEmail(signUp.Email)
	if err == nil {
		if !existing.Verified {
			otp, err := utils.GenerateOTP(4)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate OTP"})
			}
			if err := userQueries.UpdateOTPByEmail(signUp.Email, otp); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update OTP"})
			}
			if err := utils.SendOTPEmail(signUp.Email, otp); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send OTP email"})
			}
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "OTP resent to email"})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	otp, err := utils.GenerateOTP(4)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate OTP"})
	}

	avatar := signUp.Avatar
	if avatar == "" {
		avatar = "1"
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        signUp.Email,
		Username:     signUp.Username,
		PasswordHash: string(hashedPassword),
		Avatar:       avatar,
		Verified:     false,
		ReminderTime: "09:00",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		OTP:          otp,
	}

	if err := userQueries.CreateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	if err := utils.SendOTPEmail(signUp.Email, otp); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send OTP email"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered. OTP sent to email"})
}

func UserVerifyOTP(c *fiber.Ctx) error {
	payload := &models.VerifyOTP{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	if err := userQueries.VerifyOTPByEmail(payload.Email, payload.OTP); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Account verified successfully"})
}

// accessTokenTTL reads ACCESS_TOKEN_MINUTES; zero means tokens without expiry.
func accessTokenTTL() (minutes int, set bool) {
	if env := os.Getenv("ACCESS_TOKEN_MINUTES"); env != "" {
		if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
			return iv, true
		}
	}
	return 0, false
}

func refreshTokenTTL() (hours int, set bool) {
	if env := os.Getenv("REFRESH_TOKEN_HOURS"); env != "" {
		if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
			return iv, true
		}
	}
	return 0, false
}

// issueSession builds the sign-in response payload: a signed access token plus
// a stored refresh token.
func issueSession(c *fiber.Ctx, user models.User) error {
	accessMinutes, setAccessExp := accessTokenTTL()
	refreshHours, setRefreshExp := refreshTokenTTL()

	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}
	if setAccessExp {
		claims["exp"] = time.Now().Add(time.Duration(accessMinutes) * time.Minute).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	rtStr, err := utils.GenerateRandomToken(32)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate refresh token"})
	}

	var rtExpiresAt time.Time
	if setRefreshExp {
		rtExpiresAt = time.Now().Add(time.Duration(refreshHours) * time.Hour)
	}
	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     rtStr,
		ExpiresAt: rtExpiresAt,
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	if err := rtQueries.CreateRefreshToken(rt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store refresh token"})
	}

	var refreshExp interface{} = nil
	if setRefreshExp {
		refreshExp = rtExpiresAt
	}

	expiresIn := 0
	if setAccessExp {
		expiresIn = accessMinutes * 60
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":            "Sign in successful",
		"access_token":       tokenString,
		"expires_in":         expiresIn,
		"refresh_token":      rtStr,
		"refresh_expires_at": refreshExp,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func UserSignIn(c *fiber.Ctx) error {
	signIn := &models.SignIn{}
	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByEmail(signIn.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if !user.Verified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Account not verified. Please verify your account before signing in",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signIn.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return issueSession(c, user)
}

func UserSignInWithGoogle(c *fiber.Ctx) error {
	payload := struct {
		IDToken string `json:"id_token" validate:"required"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := context.Background()
	email, err := utils.ValidateGoogleIDToken(ctx, payload.IDToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByEmail(email)
	if err != nil {
		baseUsername := strings.Split(email, "@")[0]
		username := baseUsername
		if _, err2 := userQueries.GetUserByUsername(username); err2 == nil {
			username = baseUsername + "-" + uuid.New().String()[:8]
		}

		u := &models.User{
			ID:           uuid.New(),
			Email:        email,
			Username:     username,
			PasswordHash: "",
			Avatar:       "1",
			Verified:     true,
			ReminderTime: "09:00",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
			OTP:          "",
		}
		if err := userQueries.CreateUser(u); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user from Google account"})
		}
		user = *u
	}

	return issueSession(c, user)
}

func RefreshToken(c *fiber.Ctx) error {
	payload := struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	rt, err := rtQueries.GetRefreshTokenByToken(payload.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	if rt.Revoked || (!rt.ExpiresAt.IsZero() && time.Now().After(rt.ExpiresAt)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Refresh token expired or revoked"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(rt.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	accessMinutes, setAccessExp := accessTokenTTL()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "JWT secret not set"})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}
	if setAccessExp {
		claims["exp"] = time.Now().Add(time.Duration(accessMinutes) * time.Minute).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate access token"})
	}

	expiresIn := 0
	if setAccessExp {
		expiresIn = accessMinutes * 60
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"access_token": tokenString, "expires_in": expiresIn})
}

func UserLogout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	userID, err := utils.ExtractUserIDFromHeader(authHeader)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	body := struct {
		RefreshToken string `json:"refresh_token"`
	}{}
	_ = c.BodyParser(&body)

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	if body.RefreshToken != "" {
		if err := rtQueries.RevokeRefreshTokenByToken(body.RefreshToken); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke refresh token"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Refresh token revoked"})
	}

	if err := rtQueries.RevokeRefreshTokensByUser(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke refresh tokens for user"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}
