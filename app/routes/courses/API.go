package courses

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

type CourseRequest struct {
	CourseName  string  `json:"course_name"`
	CourseCode  string  `json:"course_code"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits"`
}

func GetCoursesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	courses, err := database.GetAllCourses(config.GetDB(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func GetCourseByIDAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	course, err := database.GetCourseByID(config.GetDB(), c.Params("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"course": course})
}

func CreateCourseAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.CourseName == "" || req.CourseCode == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course name and code are required"})
	}

	course := &models.Course{
		UserID:      userID,
		CourseName:  req.CourseName,
		CourseCode:  req.CourseCode,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := database.CreateCourse(config.GetDB(), course); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "A course with that code already exists"})
		}
		return err
	}
	return c.Status(201).JSON(fiber.Map{"course": course})
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.CourseName == "" || req.CourseCode == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Course name and code are required"})
	}

	course := &models.Course{
		CourseName:  req.CourseName,
		CourseCode:  req.CourseCode,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if err := database.UpdateCourse(config.GetDB(), c.Params("id"), userID, course); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "A course with that code already exists"})
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Course updated"})
}

func DeleteCourseAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := database.DeleteCourse(config.GetDB(), c.Params("id"), userID); err != nil {
		if errors.Is(err, database.ErrInUse) {
			return c.Status(409).JSON(fiber.Map{
				"error": "Course still has grades; delete those grades first",
			})
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}

func ExportCoursesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	courses, err := database.GetAllCourses(config.GetDB(), userID)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Course Name", "Course Code", "Description", "Credits"})
	for _, course := range courses {
		desc, credits := "", ""
		if course.Description != nil {
			desc = *course.Description
		}
		if course.Credits != nil {
			credits = strconv.Itoa(*course.Credits)
		}
		_ = w.Write([]string{course.ID, course.CourseName, course.CourseCode, desc, credits})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="courses.csv"`)
	return c.Send(buf.Bytes())
}
