package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUserSettingUpsert(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	require.NoError(t, SetUserSetting(db, alice.ID, "theme", "dark"))
	require.NoError(t, SetUserSetting(db, alice.ID, "theme", "light"))

	got, err := GetUserSetting(db, alice.ID, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got.SettingValue)
	assert.Equal(t, 1, countRows(t, db, "user_settings", alice.ID))
}

func TestSettingsPerOwner(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, SetUserSetting(db, alice.ID, "theme", "dark"))
	require.NoError(t, SetUserSetting(db, alice.ID, "language", "en"))
	require.NoError(t, SetUserSetting(db, bob.ID, "theme", "light"))

	aliceSettings, err := GetAllUserSettings(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceSettings, 2)
	// Ordered by key.
	assert.Equal(t, "language", aliceSettings[0].SettingKey)
	assert.Equal(t, "theme", aliceSettings[1].SettingKey)
	assert.Equal(t, "dark", aliceSettings[1].SettingValue)

	got, err := GetUserSetting(db, bob.ID, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got.SettingValue)

	_, err = GetUserSetting(db, bob.ID, "language")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserSettingsEmpty(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	settings, err := GetAllUserSettings(db, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestSetUserSettingValidation(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")

	assert.ErrorIs(t, SetUserSetting(db, alice.ID, "", "dark"), ErrValidation)
	assert.ErrorIs(t, SetUserSetting(db, "", "theme", "dark"), ErrValidation)
}
