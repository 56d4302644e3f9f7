package server

import (
	"ladle/internal/models"
	"ladle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /signup. On success it issues a session cookie and
// returns the created user with status 201.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Bio      string `json:"bio"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, token, err := s.authService.Signup(c.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(newUserView(user))
}

// Login handles POST /login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, token, err := s.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	s.setSessionCookie(c, token)
	return c.JSON(newUserView(user))
}

// CheckSession handles GET /check_session.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	user, err := s.authService.CheckSession(c.Context(), c.Cookies(sessionCookieName))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(newUserView(user))
}

// Logout handles DELETE /logout.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.authService.Logout(c.Context(), c.Cookies(sessionCookieName)); err != nil {
		return respondServiceError(c, err)
	}

	s.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
