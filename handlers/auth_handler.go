package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/lataberna/reservations-backend/configs"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates staff against the env-configured admin account and
// issues the JWT used on the /api/admin surface. ADMIN_PASSWORD_HASH
// (bcrypt) is preferred; plain ADMIN_PASSWORD is the fallback.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if !adminCredentialsValid(req.Username, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid username or password"})
	}

	claims := jwt.MapClaims{
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"success": true, "token": t})
}

func adminCredentialsValid(username, password string) bool {
	adminUser := config.Config("ADMIN_USERNAME")
	if adminUser == "" || subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) != 1 {
		return false
	}

	if hash := config.Config("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	adminPassword := config.Config("ADMIN_PASSWORD")
	return adminPassword != "" &&
		subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
}
