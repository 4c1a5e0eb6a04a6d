package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

func GetUserSetting(db *sql.DB, userID, key string) (*models.UserSetting, error) {
	s := &models.UserSetting{}
	err := db.QueryRow(`SELECT id, user_id, setting_key, setting_value
						FROM user_settings WHERE user_id = ? AND setting_key = ?`, userID, key).
		Scan(&s.ID, &s.UserID, &s.SettingKey, &s.SettingValue)
	if err != nil {
		return nil, translateError(err, false)
	}
	return s, nil
}

// SetUserSetting is an upsert: (user_id, setting_key) is unique, so a
// second set for the same key replaces the value in place.
func SetUserSetting(db *sql.DB, userID, key, value string) error {
	if userID == "" || key == "" {
		return fmt.Errorf("%w: user_id and setting_key are required", ErrValidation)
	}

	query := `INSERT INTO user_settings (id, user_id, setting_key, setting_value)
			  VALUES (?, ?, ?, ?)
			  ON CONFLICT (user_id, setting_key) DO UPDATE SET setting_value = excluded.setting_value`
	_, err := db.Exec(query, uuid.New().String(), userID, key, value)
	return translateError(err, false)
}

func GetAllUserSettings(db *sql.DB, userID string) ([]*models.UserSetting, error) {
	rows, err := db.Query(`SELECT id, user_id, setting_key, setting_value
						   FROM user_settings WHERE user_id = ? ORDER BY setting_key`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.UserSetting
	for rows.Next() {
		s := &models.UserSetting{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.SettingKey, &s.SettingValue); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
