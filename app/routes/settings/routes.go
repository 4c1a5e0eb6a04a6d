package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSettingsAPI)
	api.Post("/", UpdateSettingAPI)
	api.Put("/profile", UpdateProfileAPI)
	api.Put("/password", ChangePasswordAPI)
	api.Post("/reset", FactoryResetAPI)
	api.Delete("/account", DeleteAccountAPI)
}
