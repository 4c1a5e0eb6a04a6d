package settings

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

func setupSettingsApp(t *testing.T) (*fiber.App, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.InitializeSchema(db))

	config.AppConfig = &config.Config{DB: db, JWTSecret: "test-secret"}

	app := fiber.New()
	SetupSettingsRoutes(app)
	return app, db
}

// seedUser creates an account directly and returns a token for it.
func seedUser(t *testing.T, db *sql.DB, username, password string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Username: username, Password: hash, Role: models.RoleTeacher}
	require.NoError(t, database.CreateUser(db, user))

	token, err := auth.GenerateJWT(user.ID, user.Username, string(user.Role))
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestGetSettingsIncludesProfile(t *testing.T) {
	app, db := setupSettingsApp(t)
	user, token := seedUser(t, db, "alice", "correct-horse")
	require.NoError(t, database.SetUserSetting(db, user.ID, "theme", "dark"))

	resp, body := doJSON(t, app, "GET", "/api/settings/", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	profile := body["user"].(map[string]any)
	assert.Equal(t, "alice", profile["username"])
	settings := body["settings"].(map[string]any)
	assert.Equal(t, "dark", settings["theme"])
}

func TestUpdateSetting(t *testing.T) {
	app, db := setupSettingsApp(t)
	user, token := seedUser(t, db, "alice", "correct-horse")

	resp, _ := doJSON(t, app, "POST", "/api/settings/", token, fiber.Map{
		"key": "theme", "value": "light",
	})
	require.Equal(t, 200, resp.StatusCode)

	got, err := database.GetUserSetting(db, user.ID, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got.SettingValue)

	resp, body := doJSON(t, app, "POST", "/api/settings/", token, fiber.Map{"value": "x"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Setting key is required", body["error"])
}

func TestChangePassword(t *testing.T) {
	app, db := setupSettingsApp(t)
	user, token := seedUser(t, db, "alice", "correct-horse")

	resp, body := doJSON(t, app, "PUT", "/api/settings/password", token, fiber.Map{
		"current_password": "wrong", "new_password": "longenough",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Current password is incorrect", body["error"])

	resp, _ = doJSON(t, app, "PUT", "/api/settings/password", token, fiber.Map{
		"current_password": "correct-horse", "new_password": "short",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/api/settings/password", token, fiber.Map{
		"current_password": "correct-horse", "new_password": "new-long-pass",
	})
	require.Equal(t, 200, resp.StatusCode)

	stored, err := database.GetUserByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("new-long-pass", stored.Password))
}

func TestFactoryResetRequiresConfirmation(t *testing.T) {
	app, db := setupSettingsApp(t)
	user, token := seedUser(t, db, "alice", "correct-horse")
	require.NoError(t, database.SetUserSetting(db, user.ID, "theme", "dark"))

	resp, body := doJSON(t, app, "POST", "/api/settings/reset", token, fiber.Map{
		"confirm": "yes please",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, `Type "reset" to confirm`, body["error"])

	// The wrong token left everything in place.
	_, err := database.GetUserSetting(db, user.ID, "theme")
	require.NoError(t, err)

	resp, _ = doJSON(t, app, "POST", "/api/settings/reset", token, fiber.Map{
		"confirm": "reset",
	})
	require.Equal(t, 200, resp.StatusCode)

	_, err = database.GetUserSetting(db, user.ID, "theme")
	assert.ErrorIs(t, err, database.ErrNotFound)

	// The account itself survives a reset.
	_, err = database.GetUserByID(db, user.ID)
	assert.NoError(t, err)
}

func TestDeleteAccountRequiresConfirmation(t *testing.T) {
	app, db := setupSettingsApp(t)
	user, token := seedUser(t, db, "alice", "correct-horse")

	resp, body := doJSON(t, app, "DELETE", "/api/settings/account", token, fiber.Map{
		"confirm": "remove",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, `Type "delete" to confirm`, body["error"])

	resp, _ = doJSON(t, app, "DELETE", "/api/settings/account", token, fiber.Map{
		"confirm": "delete",
	})
	require.Equal(t, 200, resp.StatusCode)

	_, err := database.GetUserByID(db, user.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUpdateProfileDuplicateUsername(t *testing.T) {
	app, db := setupSettingsApp(t)
	seedUser(t, db, "alice", "correct-horse")
	_, bobToken := seedUser(t, db, "bob", "correct-horse")

	resp, body := doJSON(t, app, "PUT", "/api/settings/profile", bobToken, fiber.Map{
		"username": "alice",
	})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "Username already taken", body["error"])
}

func TestSettingsRequireAuth(t *testing.T) {
	app, _ := setupSettingsApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/settings/", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}
