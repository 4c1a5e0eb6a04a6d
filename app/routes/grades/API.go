package grades

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

type GradeRequest struct {
	StudentID      string   `json:"student_id"`
	CourseID       string   `json:"course_id"`
	Grade          *float64 `json:"grade"`
	AssignmentName *string  `json:"assignment_name"`
}

func GetGradesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	grades, err := database.GetAllGrades(config.GetDB(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

func GetGradeByIDAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	grade, err := database.GetGradeByID(config.GetDB(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"grade": grade})
}

func CreateGradeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateGradeRequest(&req); err != nil {
		return err
	}

	grade := &models.Grade{
		UserID:         userID,
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		Grade:          req.Grade,
		AssignmentName: req.AssignmentName,
	}
	if err := database.CreateGrade(config.GetDB(), grade); err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"grade": grade})
}

func UpdateGradeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateGradeRequest(&req); err != nil {
		return err
	}

	grade := &models.Grade{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		Grade:          req.Grade,
		AssignmentName: req.AssignmentName,
	}
	if err := database.UpdateGrade(config.GetDB(), c.Params("id"), userID, grade); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Grade updated"})
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := database.DeleteGrade(config.GetDB(), c.Params("id"), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Grade deleted"})
}

// ExportGradesAPI streams the owner's grades, with the joined display
// fields, as a CSV attachment.
func ExportGradesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	grades, err := database.GetAllGrades(config.GetDB(), userID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Student", "Course Code", "Course", "Assignment", "Grade", "Date Assigned"})
	for _, g := range grades {
		assignment, value := "", ""
		if g.AssignmentName != nil {
			assignment = *g.AssignmentName
		}
		if g.Grade != nil {
			value = models.FormatAverage(g.Grade)
		}
		_ = w.Write([]string{g.StudentName, g.CourseCode, g.CourseName, assignment, value,
			g.DateAssigned.Format("2006-01-02")})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="grades.csv"`)
	return c.Send(buf.Bytes())
}

func validateGradeRequest(req *GradeRequest) error {
	if req.StudentID == "" || req.CourseID == "" {
		return fiber.NewError(400, "Student and course are required")
	}
	if req.Grade != nil && (*req.Grade < 0 || *req.Grade > 100) {
		return fiber.NewError(400, "Grade must be between 0 and 100")
	}
	if req.AssignmentName != nil && *req.AssignmentName == "" {
		req.AssignmentName = nil
	}
	return nil
}
