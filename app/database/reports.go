package database

import (
	"database/sql"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// GetDashboardStats collects the owner's entity counts, overall average
// and most recent grades. All reads run inside one transaction so a
// single dashboard render reflects one instant; separate renders carry
// no consistency guarantee toward each other.
func GetDashboardStats(db *sql.DB, userID string) (*models.DashboardStats, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stats := &models.DashboardStats{}

	if err := tx.QueryRow(`SELECT COUNT(*) FROM students WHERE user_id = ?`, userID).
		Scan(&stats.Students); err != nil {
		return nil, err
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM courses WHERE user_id = ?`, userID).
		Scan(&stats.Courses); err != nil {
		return nil, err
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM grades WHERE user_id = ?`, userID).
		Scan(&stats.Grades); err != nil {
		return nil, err
	}

	// AVG over zero rows is NULL, which is exactly the no-data
	// sentinel: nil, never zero.
	var avg sql.NullFloat64
	if err := tx.QueryRow(`SELECT AVG(grade) FROM grades WHERE grade IS NOT NULL AND user_id = ?`, userID).
		Scan(&avg); err != nil {
		return nil, err
	}
	if avg.Valid {
		stats.AverageGrade = &avg.Float64
	}

	clause := ` WHERE g.user_id = ? ORDER BY g.date_assigned DESC, s.last_name, c.course_name LIMIT 5`
	stats.RecentGrades, err = queryGrades(tx, clause, userID)
	if err != nil {
		return nil, err
	}

	return stats, tx.Commit()
}

// GetReportOverview computes the three report datasets from a single
// snapshot.
func GetReportOverview(db *sql.DB, userID string) (*models.ReportOverview, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	overview := &models.ReportOverview{}

	if overview.GradeDistribution, err = gradeDistribution(tx, userID); err != nil {
		return nil, err
	}
	if overview.CourseAverages, err = courseAverages(tx, userID); err != nil {
		return nil, err
	}
	if overview.StudentPerformance, err = studentPerformance(tx, userID); err != nil {
		return nil, err
	}

	return overview, tx.Commit()
}

// gradeDistribution buckets every marked grade by letter. Letters with
// no grades are absent, not zero-filled.
func gradeDistribution(q rowQuerier, userID string) ([]*models.GradeBucket, error) {
	query := `
		SELECT
			CASE
				WHEN grade >= 90 THEN 'A'
				WHEN grade >= 80 THEN 'B'
				WHEN grade >= 70 THEN 'C'
				WHEN grade >= 60 THEN 'D'
				ELSE 'F'
			END AS grade_letter,
			COUNT(*) AS count
		FROM grades
		WHERE grade IS NOT NULL AND user_id = ?
		GROUP BY grade_letter
		ORDER BY grade_letter`

	rows, err := q.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []*models.GradeBucket
	for rows.Next() {
		b := &models.GradeBucket{}
		if err := rows.Scan(&b.Letter, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// courseAverages returns the mean grade per course. Courses without any
// marked grade do not appear.
func courseAverages(q rowQuerier, userID string) ([]*models.CourseAverage, error) {
	query := `
		SELECT g.course_id, c.course_name, AVG(g.grade) AS average_grade
		FROM grades g
		JOIN courses c ON g.course_id = c.id AND c.user_id = g.user_id
		WHERE g.grade IS NOT NULL AND g.user_id = ?
		GROUP BY g.course_id, c.course_name
		ORDER BY c.course_name`

	rows, err := q.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var averages []*models.CourseAverage
	for rows.Next() {
		a := &models.CourseAverage{}
		if err := rows.Scan(&a.CourseID, &a.CourseName, &a.AverageGrade); err != nil {
			return nil, err
		}
		averages = append(averages, a)
	}
	return averages, rows.Err()
}

// studentPerformance surfaces every student the owner has, with the
// number of distinct courses they are graded in and their mean grade.
// Unlike courseAverages this is a left inclusion: a student with no
// grades still appears, with count 0 and a nil average.
func studentPerformance(q rowQuerier, userID string) ([]*models.StudentPerformance, error) {
	query := `
		SELECT s.id, s.first_name || ' ' || s.last_name AS student_name,
			   COUNT(DISTINCT g.course_id) AS courses_count,
			   AVG(g.grade) AS average_grade
		FROM students s
		LEFT JOIN grades g ON s.id = g.student_id AND g.user_id = s.user_id
		WHERE s.user_id = ?
		GROUP BY s.id, s.first_name, s.last_name
		ORDER BY s.last_name, s.first_name`

	rows, err := q.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performance []*models.StudentPerformance
	for rows.Next() {
		p := &models.StudentPerformance{}
		var avg sql.NullFloat64
		if err := rows.Scan(&p.StudentID, &p.StudentName, &p.CoursesCount, &avg); err != nil {
			return nil, err
		}
		if avg.Valid {
			p.AverageGrade = &avg.Float64
		}
		performance = append(performance, p)
	}
	return performance, rows.Err()
}
