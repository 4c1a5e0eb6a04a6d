package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// GetDashboardAPI returns the owner's counts, overall average and the
// five most recent grades, all from one snapshot.
func GetDashboardAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := database.GetDashboardStats(config.GetDB(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"students": stats.Students,
			"courses":  stats.Courses,
			"grades":   stats.Grades,
			"average":  models.FormatAverage(stats.AverageGrade),
		},
		"recent_grades": stats.RecentGrades,
	})
}
