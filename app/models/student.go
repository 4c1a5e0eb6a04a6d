package models

import "time"

type Student struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          *string   `json:"email,omitempty"`
	DateOfBirth    *string   `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	EnrollmentDate time.Time `json:"enrollment_date"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
