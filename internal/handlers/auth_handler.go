package handlers

import (
	"log"

	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles user registration and the local login path. Both
// routes run pre-authentication: registration records a freshly signed-up
// identity, login turns credentials into a token.
type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService *services.UserService, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the registration and login routes.
func (h *AuthHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/users", h.HandleRegister)
	router.Post("/auth/login", h.HandleLogin)
}

// RegisterRequest represents the request body for registration. Password
// is optional; without it the account relies on an external token issuer.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// HandleRegister upserts a user by email. A duplicate registration is a
// no-op reported as such, never an error.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	}
	inserted, err := h.userService.RegisterUser(user, req.Password)
	if err != nil {
		log.Printf("Error registering user %s: %v", req.Email, err)
		return writeError(c, err, "Could not register user")
	}

	if !inserted {
		return c.JSON(fiber.Map{
			"message":  "user already exists",
			"inserted": false,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "user registered successfully",
		"inserted":   true,
		"insertedId": user.ID,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a registered user and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
