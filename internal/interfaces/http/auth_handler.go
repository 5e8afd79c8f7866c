package http

import (
	"errors"

	"github.com/gmslog/insumos-api/internal/application/access"
	"github.com/gmslog/insumos-api/internal/application/dto"
	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler trata o login.
type AuthHandler struct {
	uc *access.AccessUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *access.AccessUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Entrar no sistema
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "nome, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Authenticate(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Mensagem única de propósito: não revela se o erro foi nome ou senha.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "dados de acesso incorretos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
