package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// openTestDB gives each test its own in-memory database with the full
// schema applied. A single connection keeps the memory database alive
// for the test's duration.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitializeSchema(db))
	return db
}

func createTestUser(t *testing.T, db *sql.DB, username string) *models.User {
	t.Helper()

	u := &models.User{Username: username, Password: "hashed-password"}
	require.NoError(t, CreateUser(db, u))
	return u
}

func createTestStudent(t *testing.T, db *sql.DB, userID, first, last string) *models.Student {
	t.Helper()

	s := &models.Student{UserID: userID, FirstName: first, LastName: last}
	require.NoError(t, CreateStudent(db, s))
	return s
}

func createTestCourse(t *testing.T, db *sql.DB, userID, name, code string) *models.Course {
	t.Helper()

	c := &models.Course{UserID: userID, CourseName: name, CourseCode: code}
	require.NoError(t, CreateCourse(db, c))
	return c
}

func createTestGrade(t *testing.T, db *sql.DB, userID, studentID, courseID string, value float64, assignment string) *models.Grade {
	t.Helper()

	g := &models.Grade{
		UserID:         userID,
		StudentID:      studentID,
		CourseID:       courseID,
		Grade:          &value,
		AssignmentName: &assignment,
		DateAssigned:   time.Now(),
	}
	require.NoError(t, CreateGrade(db, g))
	return g
}

func countRows(t *testing.T, db *sql.DB, table, userID string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE user_id = ?`, userID).Scan(&n))
	return n
}
