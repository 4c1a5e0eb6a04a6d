package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

// Confirmation literals for the two destructive account operations.
// Matching is case-insensitive and ignores surrounding whitespace.
const (
	FactoryResetConfirmation  = "reset"
	DeleteAccountConfirmation = "delete"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`SELECT id, username, password, role, created_at
						FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err, false)
	}
	return u, nil
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`SELECT id, username, password, role, created_at
						FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, translateError(err, false)
	}
	return u, nil
}

// CreateUser inserts a new account. Password must already be hashed;
// this package never sees a plaintext secret.
func CreateUser(db *sql.DB, u *models.User) error {
	if u.Username == "" || u.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = models.RoleTeacher
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	_, err := db.Exec(`INSERT INTO users (id, username, password, role, created_at)
					   VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Password, u.Role, u.CreatedAt)
	return translateError(err, false)
}

// UpdateUserProfile changes the account's username. Taken usernames
// surface as ErrDuplicate.
func UpdateUserProfile(db *sql.DB, id, username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}

	res, err := db.Exec(`UPDATE users SET username = ? WHERE id = ?`, username, id)
	if err != nil {
		return translateError(err, false)
	}
	return requireRowChanged(res)
}

func UpdateUserPassword(db *sql.DB, id, hashedPassword string) error {
	if hashedPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	res, err := db.Exec(`UPDATE users SET password = ? WHERE id = ?`, hashedPassword, id)
	if err != nil {
		return translateError(err, false)
	}
	return requireRowChanged(res)
}

// ConfirmFactoryReset deletes every record the account owns while
// keeping the account itself. The confirmation gate lives here, not
// only in the handler, so no caller can wipe an account's data without
// supplying the literal. Everything happens in one transaction: either
// all four tables are cleared or none are.
func ConfirmFactoryReset(db *sql.DB, userID, confirmation string) error {
	if !confirmationMatches(confirmation, FactoryResetConfirmation) {
		return ErrConfirmation
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Grades go first: they hold RESTRICT references into students and
	// courses.
	for _, table := range []string{"grades", "courses", "students", "user_settings"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE user_id = ?`, userID); err != nil {
			return translateError(err, true)
		}
	}
	return tx.Commit()
}

// ConfirmDeleteAccount removes the account row; the schema's cascading
// foreign keys take all owned students, courses, grades and settings
// with it atomically.
func ConfirmDeleteAccount(db *sql.DB, userID, confirmation string) error {
	if !confirmationMatches(confirmation, DeleteAccountConfirmation) {
		return ErrConfirmation
	}

	res, err := db.Exec(`DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return translateError(err, true)
	}
	return requireRowChanged(res)
}

func confirmationMatches(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), want)
}
