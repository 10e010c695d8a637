package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "absensiku_backend/internals/features/users/auth/controller"
	"absensiku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	app.Post("/api/admin/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
}
