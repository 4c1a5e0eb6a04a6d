package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

func TestGradeListWithDisplayFields(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	c := createTestCourse(t, db, alice.ID, "Computer Science", "CS1")
	createTestGrade(t, db, alice.ID, s.ID, c.ID, 85, "HW1")

	grades, err := GetAllGrades(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, grades, 1)

	g := grades[0]
	assert.Equal(t, "Ann Lee", g.StudentName)
	assert.Equal(t, "CS1", g.CourseCode)
	assert.Equal(t, "Computer Science", g.CourseName)
	require.NotNil(t, g.Grade)
	assert.Equal(t, 85.0, *g.Grade)
}

func TestGradeDuplicateAssignment(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	c := createTestCourse(t, db, alice.ID, "Computer Science", "CS1")
	createTestGrade(t, db, alice.ID, s.ID, c.ID, 85, "HW1")

	// Same student, course and assignment label: grading twice is
	// rejected by the storage constraint, not an application check.
	value := 90.0
	assignment := "HW1"
	dup := &models.Grade{
		UserID:         alice.ID,
		StudentID:      s.ID,
		CourseID:       c.ID,
		Grade:          &value,
		AssignmentName: &assignment,
	}
	assert.ErrorIs(t, CreateGrade(db, dup), ErrDuplicate)

	// A different label for the same pairing is fine.
	other := "HW2"
	dup.AssignmentName = &other
	dup.ID = ""
	assert.NoError(t, CreateGrade(db, dup))
}

func TestGradeCrossOwnerReference(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	annOfAlice := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	bobsCourse := createTestCourse(t, db, bob.ID, "Computer Science", "CS1")
	alicesCourse := createTestCourse(t, db, alice.ID, "Physics", "PH1")

	// The raw ids exist, but a grade may only reference rows of its own
	// owner.
	value := 85.0
	g := &models.Grade{UserID: bob.ID, StudentID: annOfAlice.ID, CourseID: bobsCourse.ID, Grade: &value}
	assert.ErrorIs(t, CreateGrade(db, g), ErrForeignKey)

	g = &models.Grade{UserID: bob.ID, StudentID: annOfAlice.ID, CourseID: alicesCourse.ID, Grade: &value}
	assert.ErrorIs(t, CreateGrade(db, g), ErrForeignKey)
}

func TestGradeValidation(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")

	g := &models.Grade{UserID: alice.ID, StudentID: s.ID}
	assert.ErrorIs(t, CreateGrade(db, g), ErrValidation)

	g = &models.Grade{UserID: alice.ID, CourseID: "some-course"}
	assert.ErrorIs(t, CreateGrade(db, g), ErrValidation)
}

func TestGradeNullValueAllowed(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	c := createTestCourse(t, db, alice.ID, "Computer Science", "CS1")

	// A grade entry can exist before it has been marked.
	assignment := "Final"
	g := &models.Grade{UserID: alice.ID, StudentID: s.ID, CourseID: c.ID, AssignmentName: &assignment}
	require.NoError(t, CreateGrade(db, g))

	got, err := GetGradeByID(db, g.ID, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Grade)
}

func TestGradesOrderedNewestFirst(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	c := createTestCourse(t, db, alice.ID, "Computer Science", "CS1")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, assignment := range []string{"HW1", "HW2", "HW3"} {
		value := 80.0
		name := assignment
		g := &models.Grade{
			UserID:         alice.ID,
			StudentID:      s.ID,
			CourseID:       c.ID,
			Grade:          &value,
			AssignmentName: &name,
			DateAssigned:   base.AddDate(0, 0, i),
		}
		require.NoError(t, CreateGrade(db, g))
	}

	grades, err := GetAllGrades(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, grades, 3)
	assert.Equal(t, "HW3", *grades[0].AssignmentName)
	assert.Equal(t, "HW1", *grades[2].AssignmentName)
}

func TestGradeOwnershipIsolation(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	s := createTestStudent(t, db, alice.ID, "Ann", "Lee")
	c := createTestCourse(t, db, alice.ID, "Computer Science", "CS1")
	g := createTestGrade(t, db, alice.ID, s.ID, c.ID, 85, "HW1")

	_, err := GetGradeByID(db, g.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, DeleteGrade(db, g.ID, bob.ID), ErrNotFound)

	patch := &models.Grade{StudentID: s.ID, CourseID: c.ID}
	assert.ErrorIs(t, UpdateGrade(db, g.ID, bob.ID, patch), ErrForeignKey)
}
