package models

import "fmt"

// DashboardStats summarizes one owner's records. AverageGrade is nil
// when the owner has no marked grades; never zero.
type DashboardStats struct {
	Students     int      `json:"students"`
	Courses      int      `json:"courses"`
	Grades       int      `json:"grades"`
	AverageGrade *float64 `json:"average_grade"`
	RecentGrades []*Grade `json:"recent_grades"`
}

// GradeBucket is one letter of the grade distribution. Letters with no
// grades are simply not present in the result.
type GradeBucket struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

type CourseAverage struct {
	CourseID     string  `json:"course_id"`
	CourseName   string  `json:"course_name"`
	AverageGrade float64 `json:"average_grade"`
}

// StudentPerformance always includes every student the owner has, even
// ones with no grades (count 0, nil average).
type StudentPerformance struct {
	StudentID    string   `json:"student_id"`
	StudentName  string   `json:"student_name"`
	CoursesCount int      `json:"courses_count"`
	AverageGrade *float64 `json:"average_grade"`
}

// ReportOverview holds everything one reports page render needs,
// computed from a single snapshot.
type ReportOverview struct {
	GradeDistribution  []*GradeBucket        `json:"grade_distribution"`
	CourseAverages     []*CourseAverage      `json:"course_averages"`
	StudentPerformance []*StudentPerformance `json:"student_performance"`
}

// FormatAverage renders an average to one decimal place, or "N/A" for
// the no-data case.
func FormatAverage(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *avg)
}
