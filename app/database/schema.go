package database

import (
	"database/sql"
	"log"
)

// InitializeSchema creates the five tables if they do not exist yet.
// Every invariant the application relies on is declared here so no code
// path can write around it: per-owner uniqueness is a composite UNIQUE
// with user_id, account deletion cascades to all owned rows, and grades
// pin their student and course rows in place (RESTRICT) so a deletion
// that would orphan grades fails instead of silently removing them.
func InitializeSchema(db *sql.DB) error {
	log.Println("Initializing database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'teacher' CHECK (role IN ('admin', 'teacher')),
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT,
			date_of_birth TEXT,
			enrollment_date TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			UNIQUE (email, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			course_name TEXT NOT NULL,
			course_code TEXT NOT NULL,
			description TEXT,
			credits INTEGER,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			UNIQUE (course_code, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS grades (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			student_id TEXT NOT NULL,
			course_id TEXT NOT NULL,
			grade REAL,
			assignment_name TEXT,
			date_assigned TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			FOREIGN KEY (student_id) REFERENCES students (id) ON DELETE RESTRICT,
			FOREIGN KEY (course_id) REFERENCES courses (id) ON DELETE RESTRICT,
			UNIQUE (student_id, course_id, assignment_name)
		)`,
		`CREATE TABLE IF NOT EXISTS user_settings (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			setting_key TEXT NOT NULL,
			setting_value TEXT,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			UNIQUE (user_id, setting_key)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run schema statement: %v", err)
			return err
		}
	}

	log.Println("Database schema initialized successfully")
	return nil
}
