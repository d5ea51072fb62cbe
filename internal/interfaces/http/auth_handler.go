package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktur-api/internal/application/dto"
	"github.com/jhoicas/faktur-api/pkg/config"
	"github.com/jhoicas/faktur-api/pkg/jwt"
)

// AuthHandler maneja el login del editor. Las credenciales son las dos
// configuradas; no hay registro ni gestión de usuarios.
type AuthHandler struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(auth config.AuthConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{auth: auth, jwt: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(h.auth.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(h.auth.Password)) == 1
	if !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	token, err := jwt.Generate(h.jwt.Secret, in.Username, h.jwt.Issuer, h.jwt.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: token, Username: in.Username})
}
