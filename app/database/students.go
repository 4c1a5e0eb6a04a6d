package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// GetAllStudents returns every student owned by userID, ordered by last
// then first name.
func GetAllStudents(db *sql.DB, userID string) ([]*models.Student, error) {
	query := `SELECT id, user_id, first_name, last_name, email, date_of_birth, enrollment_date
			  FROM students WHERE user_id = ? ORDER BY last_name, first_name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.FirstName, &s.LastName,
			&s.Email, &s.DateOfBirth, &s.EnrollmentDate); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID returns the student only when it exists and belongs to
// userID; any other case is ErrNotFound.
func GetStudentByID(db *sql.DB, id, userID string) (*models.Student, error) {
	query := `SELECT id, user_id, first_name, last_name, email, date_of_birth, enrollment_date
			  FROM students WHERE id = ? AND user_id = ?`

	s := &models.Student{}
	err := db.QueryRow(query, id, userID).Scan(&s.ID, &s.UserID, &s.FirstName,
		&s.LastName, &s.Email, &s.DateOfBirth, &s.EnrollmentDate)
	if err != nil {
		return nil, translateError(err, false)
	}
	return s, nil
}

// CreateStudent inserts a new student stamped with its owner. The ID
// and enrollment date are filled in when absent.
func CreateStudent(db *sql.DB, s *models.Student) error {
	if s.UserID == "" || s.FirstName == "" || s.LastName == "" {
		return fmt.Errorf("%w: user_id, first_name and last_name are required", ErrValidation)
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.EnrollmentDate.IsZero() {
		s.EnrollmentDate = time.Now()
	}

	query := `INSERT INTO students (id, user_id, first_name, last_name, email, date_of_birth, enrollment_date)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query, s.ID, s.UserID, s.FirstName, s.LastName,
		s.Email, s.DateOfBirth, s.EnrollmentDate)
	return translateError(err, false)
}

// UpdateStudent applies the new field values to the row matching
// (id, userID). Zero rows affected means not found or not yours.
func UpdateStudent(db *sql.DB, id, userID string, s *models.Student) error {
	if s.FirstName == "" || s.LastName == "" {
		return fmt.Errorf("%w: first_name and last_name are required", ErrValidation)
	}

	query := `UPDATE students SET first_name = ?, last_name = ?, email = ?, date_of_birth = ?
			  WHERE id = ? AND user_id = ?`
	res, err := db.Exec(query, s.FirstName, s.LastName, s.Email, s.DateOfBirth, id, userID)
	if err != nil {
		return translateError(err, false)
	}
	return requireRowChanged(res)
}

// DeleteStudent removes the row matching (id, userID). Fails with
// ErrInUse while grades still reference the student.
func DeleteStudent(db *sql.DB, id, userID string) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return translateError(err, true)
	}
	return requireRowChanged(res)
}

// requireRowChanged turns the zero-rows-affected case into ErrNotFound.
// Callers must never treat it as success.
func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
