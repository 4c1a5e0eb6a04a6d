package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// rowQuerier is satisfied by both *sql.DB and *sql.Tx, so the report
// engine can reuse grade reads inside its snapshot transaction.
type rowQuerier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Grade reads join students and courses to project display fields. Both
// joins repeat the owner filter: a grade whose student or course row
// belongs to a different owner must never surface, even though such a
// row would already indicate corruption.
const gradeSelect = `
	SELECT g.id, g.user_id, g.student_id, g.course_id, g.grade, g.assignment_name, g.date_assigned,
		   s.first_name || ' ' || s.last_name AS student_name,
		   c.course_name, c.course_code
	FROM grades g
	JOIN students s ON g.student_id = s.id AND s.user_id = g.user_id
	JOIN courses c ON g.course_id = c.id AND c.user_id = g.user_id`

func queryGrades(q rowQuerier, clause string, args ...any) ([]*models.Grade, error) {
	rows, err := q.Query(gradeSelect+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		g := &models.Grade{}
		if err := rows.Scan(&g.ID, &g.UserID, &g.StudentID, &g.CourseID,
			&g.Grade, &g.AssignmentName, &g.DateAssigned,
			&g.StudentName, &g.CourseName, &g.CourseCode); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// GetAllGrades returns every grade owned by userID, newest first, with
// student and course display fields attached.
func GetAllGrades(db *sql.DB, userID string) ([]*models.Grade, error) {
	clause := ` WHERE g.user_id = ? ORDER BY g.date_assigned DESC, s.last_name, c.course_name`
	return queryGrades(db, clause, userID)
}

func GetGradeByID(db *sql.DB, id, userID string) (*models.Grade, error) {
	g := &models.Grade{}
	err := db.QueryRow(gradeSelect+` WHERE g.id = ? AND g.user_id = ?`, id, userID).
		Scan(&g.ID, &g.UserID, &g.StudentID, &g.CourseID,
			&g.Grade, &g.AssignmentName, &g.DateAssigned,
			&g.StudentName, &g.CourseName, &g.CourseCode)
	if err != nil {
		return nil, translateError(err, false)
	}
	return g, nil
}

// CreateGrade inserts a grade after checking that the referenced
// student and course resolve under the grade's own owner. The raw
// foreign keys cannot see ownership across tables, so a reference to
// another owner's row has to be rejected here.
func CreateGrade(db *sql.DB, g *models.Grade) error {
	if g.UserID == "" || g.StudentID == "" || g.CourseID == "" {
		return fmt.Errorf("%w: user_id, student_id and course_id are required", ErrValidation)
	}
	if err := checkGradeRefs(db, g.UserID, g.StudentID, g.CourseID); err != nil {
		return err
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.DateAssigned.IsZero() {
		g.DateAssigned = time.Now()
	}

	query := `INSERT INTO grades (id, user_id, student_id, course_id, grade, assignment_name, date_assigned)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query, g.ID, g.UserID, g.StudentID, g.CourseID,
		g.Grade, g.AssignmentName, g.DateAssigned)
	return translateError(err, false)
}

func UpdateGrade(db *sql.DB, id, userID string, g *models.Grade) error {
	if g.StudentID == "" || g.CourseID == "" {
		return fmt.Errorf("%w: student_id and course_id are required", ErrValidation)
	}
	if err := checkGradeRefs(db, userID, g.StudentID, g.CourseID); err != nil {
		return err
	}

	query := `UPDATE grades SET student_id = ?, course_id = ?, grade = ?, assignment_name = ?
			  WHERE id = ? AND user_id = ?`
	res, err := db.Exec(query, g.StudentID, g.CourseID, g.Grade, g.AssignmentName, id, userID)
	if err != nil {
		return translateError(err, false)
	}
	return requireRowChanged(res)
}

func DeleteGrade(db *sql.DB, id, userID string) error {
	res, err := db.Exec(`DELETE FROM grades WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return translateError(err, true)
	}
	return requireRowChanged(res)
}

// checkGradeRefs verifies the student and course exist and belong to
// userID. A row that exists under a different owner fails the same way
// as one that does not exist at all.
func checkGradeRefs(db *sql.DB, userID, studentID, courseID string) error {
	var one int
	err := db.QueryRow(`SELECT 1 FROM students WHERE id = ? AND user_id = ?`, studentID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: student %s", ErrForeignKey, studentID)
	}
	if err != nil {
		return err
	}

	err = db.QueryRow(`SELECT 1 FROM courses WHERE id = ? AND user_id = ?`, courseID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: course %s", ErrForeignKey, courseID)
	}
	return err
}
