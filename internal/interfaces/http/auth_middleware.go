package http

import (
	"strings"

	"github.com/gmslog/insumos-api/internal/application/dto"
	"github.com/gmslog/insumos-api/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// Locals keys da sessão no Fiber.
const (
	LocalUserID = "user_id"
	LocalNome   = "nome"
	LocalRole   = "role"
	LocalLoja   = "loja"
)

// AuthMiddleware valida o Bearer Token JWT e coloca a sessão em c.Locals.
// A sessão é sempre explícita: cada requisição carrega o próprio token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		session, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalNome, session.Nome)
		c.Locals(LocalRole, session.Role)
		c.Locals(LocalLoja, session.Loja)
		return c.Next()
	}
}

// RequireRole autoriza apenas os roles informados. Usar DEPOIS de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem nível de acesso"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para este nível"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetNome devolve o nome de exibição do usuário logado.
func GetNome(c *fiber.Ctx) string { return localString(c, LocalNome) }

// GetRole devolve o nível de acesso do usuário logado.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetLoja devolve a VD de responsabilidade do usuário logado (vazio para admin).
func GetLoja(c *fiber.Ctx) string { return localString(c, LocalLoja) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
