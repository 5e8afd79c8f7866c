package http

import (
	"errors"

	"github.com/gmslog/insumos-api/internal/application/access"
	"github.com/gmslog/insumos-api/internal/application/dto"
	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// UserHandler trata o provisionamento de usuários (somente admin).
type UserHandler struct {
	uc *access.AccessUseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *access.AccessUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Provision godoc
// @Summary      Provisionar operador de VD
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionRequest  true  "nome, loja_responsavel, senha"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ProvisionOperador(entity.Role(GetRole(c)), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "somente admin provisiona usuários"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome, loja válida e senha com ao menos 8 caracteres são obrigatórios"})
		case errors.Is(err, domain.ErrInconsistent):
			// Conta de acesso criada sem perfil local: precisa de reconciliação manual.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INCONSISTENT", Message: "conta criada sem perfil local, contate o suporte"})
		case errors.Is(err, domain.ErrProvisioningFailed):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PROVISIONING_FAILED", Message: "falha ao criar a conta de acesso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
