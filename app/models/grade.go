package models

import "time"

// Grade links a student and a course belonging to the same owner. The
// numeric value is nullable so an assignment can be recorded before it
// has been marked.
type Grade struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	StudentID      string    `json:"student_id"`
	CourseID       string    `json:"course_id"`
	Grade          *float64  `json:"grade"`
	AssignmentName *string   `json:"assignment_name,omitempty"`
	DateAssigned   time.Time `json:"date_assigned"`

	// Display fields joined from students and courses on reads.
	StudentName string `json:"student_name,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	CourseCode  string `json:"course_code,omitempty"`
}
