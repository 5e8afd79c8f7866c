package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
}

// UserResponse dados públicos de um usuário (sem credencial).
type UserResponse struct {
	ID              string    `json:"id"`
	Nome            string    `json:"nome"`
	Login           string    `json:"login"`
	NivelAcesso     string    `json:"nivel_acesso"`
	LojaResponsavel string    `json:"loja_responsavel,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LoginResponse sessão explícita devolvida pelo login: token + dados do usuário.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}

// ProvisionRequest body para POST /api/usuarios (provisionar operador).
type ProvisionRequest struct {
	Nome            string `json:"nome"`
	LojaResponsavel string `json:"loja_responsavel"`
	Senha           string `json:"senha"`
}
