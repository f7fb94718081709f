package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitflow/habitflow-backend/app/controllers"
	"github.com/habitflow/habitflow-backend/pkg/middleware"
)

func RegisterUserRoutes(app *fiber.App) {
	// Public routes
	app.Post("/signup", controllers.UserSignUp)
	app.Post("/signin", controllers.UserSignIn)
	app.Post("/signin/google", controllers.UserSignInWithGoogle)
	app.Post("/verify-otp", controllers.UserVerifyOTP)
	app.Post("/refresh-token", controllers.RefreshToken)
	app.Post("/logout", controllers.UserLogout)

	// Protected routes
	user := app.Group("/user", middleware.JWTProtected())
	user.Get("/profile", controllers.UserProfile)
	user.Put("/update", controllers.UpdateUser)
	user.Delete("/delete", controllers.DeleteUser)
}
