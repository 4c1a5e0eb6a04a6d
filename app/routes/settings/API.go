package settings

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/routes/auth"
)

// GetSettingsAPI returns the account profile together with every
// key/value setting the owner has, keyed for easy access.
func GetSettingsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	db := config.GetDB()

	user, err := database.GetUserByID(db, userID)
	if err != nil {
		return err
	}

	settings, err := database.GetAllUserSettings(db, userID)
	if err != nil {
		return err
	}
	settingsMap := make(map[string]string, len(settings))
	for _, s := range settings {
		settingsMap[s.SettingKey] = s.SettingValue
	}

	return c.JSON(fiber.Map{
		"user":     user,
		"settings": settingsMap,
	})
}

func UpdateSettingAPI(c *fiber.Ctx) error {
	type SettingRequest struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	userID := c.Locals("user_id").(string)

	var req SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Key == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Setting key is required"})
	}

	if err := database.SetUserSetting(config.GetDB(), userID, req.Key, req.Value); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Setting updated"})
}

func UpdateProfileAPI(c *fiber.Ctx) error {
	type ProfileRequest struct {
		Username string `json:"username"`
	}

	userID := c.Locals("user_id").(string)

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Username == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username is required"})
	}

	if err := database.UpdateUserProfile(config.GetDB(), userID, req.Username); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "Username already taken"})
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	userID := c.Locals("user_id").(string)
	db := config.GetDB()

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "New password must be at least 8 characters"})
	}

	user, err := database.GetUserByID(db, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(db, userID, hashedPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// FactoryResetAPI wipes every record the account owns. The caller must
// send confirm: "reset"; the literal is checked again inside the
// database package, this handler only passes it through.
func FactoryResetAPI(c *fiber.Ctx) error {
	type ConfirmRequest struct {
		Confirm string `json:"confirm"`
	}

	userID := c.Locals("user_id").(string)

	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.ConfirmFactoryReset(config.GetDB(), userID, req.Confirm); err != nil {
		if errors.Is(err, database.ErrConfirmation) {
			return c.Status(400).JSON(fiber.Map{"error": `Type "reset" to confirm`})
		}
		return err
	}
	return c.JSON(fiber.Map{"message": "All data has been reset"})
}

// DeleteAccountAPI removes the account and, through the schema's
// cascades, everything it owns. Requires confirm: "delete".
func DeleteAccountAPI(c *fiber.Ctx) error {
	type ConfirmRequest struct {
		Confirm string `json:"confirm"`
	}

	userID := c.Locals("user_id").(string)

	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.ConfirmDeleteAccount(config.GetDB(), userID, req.Confirm); err != nil {
		if errors.Is(err, database.ErrConfirmation) {
			return c.Status(400).JSON(fiber.Map{"error": `Type "delete" to confirm`})
		}
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
