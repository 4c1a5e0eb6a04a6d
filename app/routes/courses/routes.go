package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

func SetupCoursesRoutes(app *fiber.App) {
	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCoursesAPI)
	api.Get("/export", ExportCoursesAPI)
	api.Get("/:id", GetCourseByIDAPI)
	api.Post("/", CreateCourseAPI)
	api.Put("/:id", UpdateCourseAPI)
	api.Delete("/:id", DeleteCourseAPI)
}
