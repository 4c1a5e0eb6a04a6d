package models

type Course struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	CourseName  string  `json:"course_name"`
	CourseCode  string  `json:"course_code"`
	Description *string `json:"description,omitempty"`
	Credits     *int    `json:"credits,omitempty"`
}
