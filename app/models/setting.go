package models

type UserSetting struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	SettingKey   string `json:"setting_key"`
	SettingValue string `json:"setting_value"`
}
