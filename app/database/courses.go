package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

func GetAllCourses(db *sql.DB, userID string) ([]*models.Course, error) {
	query := `SELECT id, user_id, course_name, course_code, description, credits
			  FROM courses WHERE user_id = ? ORDER BY course_name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.CourseName, &c.CourseCode,
			&c.Description, &c.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func GetCourseByID(db *sql.DB, id, userID string) (*models.Course, error) {
	query := `SELECT id, user_id, course_name, course_code, description, credits
			  FROM courses WHERE id = ? AND user_id = ?`

	c := &models.Course{}
	err := db.QueryRow(query, id, userID).Scan(&c.ID, &c.UserID, &c.CourseName,
		&c.CourseCode, &c.Description, &c.Credits)
	if err != nil {
		return nil, translateError(err, false)
	}
	return c, nil
}

// CreateCourse inserts a new course. The (course_code, user_id) pair is
// unique, so two owners can reuse the same code but one owner cannot.
func CreateCourse(db *sql.DB, c *models.Course) error {
	if c.UserID == "" || c.CourseName == "" || c.CourseCode == "" {
		return fmt.Errorf("%w: user_id, course_name and course_code are required", ErrValidation)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `INSERT INTO courses (id, user_id, course_name, course_code, description, credits)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query, c.ID, c.UserID, c.CourseName, c.CourseCode, c.Description, c.Credits)
	return translateError(err, false)
}

func UpdateCourse(db *sql.DB, id, userID string, c *models.Course) error {
	if c.CourseName == "" || c.CourseCode == "" {
		return fmt.Errorf("%w: course_name and course_code are required", ErrValidation)
	}

	query := `UPDATE courses SET course_name = ?, course_code = ?, description = ?, credits = ?
			  WHERE id = ? AND user_id = ?`
	res, err := db.Exec(query, c.CourseName, c.CourseCode, c.Description, c.Credits, id, userID)
	if err != nil {
		return translateError(err, false)
	}
	return requireRowChanged(res)
}

// DeleteCourse removes the row matching (id, userID). While grades
// still reference the course the delete fails with ErrInUse; the
// dependent grades must be deleted first.
func DeleteCourse(db *sql.DB, id, userID string) error {
	res, err := db.Exec(`DELETE FROM courses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return translateError(err, true)
	}
	return requireRowChanged(res)
}
