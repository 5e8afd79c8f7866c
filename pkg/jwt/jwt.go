package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Role e Loja viajam no token para que o middleware de acesso decida sem consultar a DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
	Role   string `json:"role"` // "admin" | "operador"
	Loja   string `json:"loja"` // VD de responsabilidade (vazio para admin)
}

// SessionData dados da sessão extraídos/embutidos no token.
type SessionData struct {
	UserID string
	Nome   string
	Role   string
	Loja   string
}

// Generate gera um token JWT assinado com os dados da sessão.
func Generate(secret string, s SessionData, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: s.UserID,
		Nome:   s.Nome,
		Role:   s.Role,
		Loja:   s.Loja,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve os dados da sessão.
// Retorna erro se o token for inválido, expirado ou tiver assinatura incorreta.
func Parse(secret, tokenString string) (SessionData, error) {
	if secret == "" {
		return SessionData{}, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return SessionData{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return SessionData{}, fmt.Errorf("claims inválidos")
	}
	return SessionData{
		UserID: claims.UserID,
		Nome:   claims.Nome,
		Role:   claims.Role,
		Loja:   claims.Loja,
	}, nil
}
