// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "absensiku_backend/internals/middlewares/auth"
	routeDetails "absensiku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== STAFF (JWT) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/attendance", authMiddleware.StaffJWT())
	routeDetails.AttendanceRoutes(staff, db)

	// ===================== ADMIN (JWT + role) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin", authMiddleware.AdminJWT())
	routeDetails.AdminRoutes(admin, db)
}
