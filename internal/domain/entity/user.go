package entity

import "time"

// Role nível de acesso do usuário. Tipo fechado: só os valores abaixo são válidos.
type Role string

// Níveis de acesso válidos.
const (
	RoleAdmin    Role = "admin"    // acessa todas as lojas e as ações administrativas
	RoleOperador Role = "operador" // restrito à sua VD de responsabilidade
)

// Valid informa se o role é um dos valores conhecidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperador:
		return true
	}
	return false
}

// User representa um usuário do sistema (operador de VD ou administrador).
// A credencial vive no colaborador de identidade, nunca aqui.
type User struct {
	ID              string
	Nome            string
	Login           string // chave técnica derivada do nome, usada no colaborador de identidade
	NivelAcesso     Role
	LojaResponsavel string // obrigatório para operador; ignorado para admin
	CreatedAt       time.Time
}
