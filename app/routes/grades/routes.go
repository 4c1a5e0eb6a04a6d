package grades

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetGradesAPI)
	api.Get("/export", ExportGradesAPI)
	api.Get("/:id", GetGradeByIDAPI)
	api.Post("/", CreateGradeAPI)
	api.Put("/:id", UpdateGradeAPI)
	api.Delete("/:id", DeleteGradeAPI)
}
