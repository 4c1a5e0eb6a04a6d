package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/courses"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/dashboard"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/grades"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/reports"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/settings"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/students"
)

// errorHandler maps the database package's error kinds onto HTTP
// statuses in one place so handlers can return storage errors as-is.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, database.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, database.ErrDuplicate), errors.Is(err, database.ErrInUse):
		code = fiber.StatusConflict
	case errors.Is(err, database.ErrForeignKey):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, database.ErrValidation), errors.Is(err, database.ErrConfirmation):
		code = fiber.StatusBadRequest
	case errors.Is(err, database.ErrBadCredentials):
		code = fiber.StatusUnauthorized
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	config.Load()
	config.InitDB()
	db := config.GetDB()

	if err := database.InitializeSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Student Grading System",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	courses.SetupCoursesRoutes(app)
	grades.SetupGradesRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	reports.SetupReportsRoutes(app)
	settings.SetupSettingsRoutes(app)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Shut down cleanly so the database file is closed properly.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server running at port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
