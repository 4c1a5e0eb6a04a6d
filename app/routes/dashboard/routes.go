package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetDashboardAPI)
}
