package students

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

type StudentRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"date_of_birth"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	students, err := database.GetAllStudents(config.GetDB(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateStudentRequest(&req); err != nil {
		return err
	}

	student := &models.Student{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validateStudentRequest(&req); err != nil {
		return err
	}

	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}
	if err := database.UpdateStudent(config.GetDB(), c.Params("id"), userID, student); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Student updated"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := database.DeleteStudent(config.GetDB(), c.Params("id"), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

// ExportStudentsAPI streams the owner's students as a CSV attachment.
func ExportStudentsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	students, err := database.GetAllStudents(config.GetDB(), userID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "First Name", "Last Name", "Email", "Date of Birth", "Enrollment Date"})
	for _, s := range students {
		email, dob := "", ""
		if s.Email != nil {
			email = *s.Email
		}
		if s.DateOfBirth != nil {
			dob = *s.DateOfBirth
		}
		_ = w.Write([]string{s.ID, s.FirstName, s.LastName, email, dob,
			s.EnrollmentDate.Format("2006-01-02")})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return c.Send(buf.Bytes())
}

func validateStudentRequest(req *StudentRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(400, "First name and last name are required")
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", *req.DateOfBirth); err != nil {
			return fiber.NewError(400, "Date of birth must be YYYY-MM-DD")
		}
	}
	// Empty optional strings are stored as NULL, keeping the per-owner
	// email uniqueness constraint out of play when no email is given.
	if req.Email != nil && *req.Email == "" {
		req.Email = nil
	}
	if req.DateOfBirth != nil && *req.DateOfBirth == "" {
		req.DateOfBirth = nil
	}
	return nil
}
