package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MasterWithAhmad/Student-Grading-System/app/config"
	"github.com/MasterWithAhmad/Student-Grading-System/app/database"
	"github.com/MasterWithAhmad/Student-Grading-System/app/models"
)

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(400).JSON(fiber.Map{"error": "Passwords do not match"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     models.RoleTeacher,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "Username already taken"})
		}
		return err
	}

	// Log the new account in right away.
	token, err := GenerateJWT(user.ID, user.Username, string(user.Role))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setAuthCookie(c, token)

	return c.Status(201).JSON(fiber.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	// One failure shape for unknown username and wrong password; the
	// response must not reveal which check failed.
	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": database.ErrBadCredentials.Error()})
		}
		return err
	}
	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": database.ErrBadCredentials.Error()})
	}

	token, err := GenerateJWT(user.ID, user.Username, string(user.Role))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
