package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// GetReportsAPI returns the grade distribution, per-course averages and
// per-student overview in chart-friendly label/data pairs.
func GetReportsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	overview, err := database.GetReportOverview(config.GetDB(), userID)
	if err != nil {
		return err
	}

	distLabels := make([]string, 0, len(overview.GradeDistribution))
	distData := make([]int, 0, len(overview.GradeDistribution))
	for _, b := range overview.GradeDistribution {
		distLabels = append(distLabels, b.Letter)
		distData = append(distData, b.Count)
	}

	courseLabels := make([]string, 0, len(overview.CourseAverages))
	courseData := make([]string, 0, len(overview.CourseAverages))
	for _, a := range overview.CourseAverages {
		courseLabels = append(courseLabels, a.CourseName)
		courseData = append(courseData, models.FormatAverage(&a.AverageGrade))
	}

	performance := make([]fiber.Map, 0, len(overview.StudentPerformance))
	for _, p := range overview.StudentPerformance {
		performance = append(performance, fiber.Map{
			"student_id":    p.StudentID,
			"student_name":  p.StudentName,
			"courses_count": p.CoursesCount,
			"average_grade": models.FormatAverage(p.AverageGrade),
		})
	}

	return c.JSON(fiber.Map{
		"grade_distribution":   fiber.Map{"labels": distLabels, "data": distData},
		"avg_grade_per_course": fiber.Map{"labels": courseLabels, "data": courseData},
		"student_performance":  performance,
	})
}
