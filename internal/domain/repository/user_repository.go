package repository

import "github.com/gmslog/insumos-api/internal/domain/entity"

// UserRepository porta de persistência dos usuários (tabela usuarios).
type UserRepository interface {
	// Create persiste o perfil local de um usuário provisionado.
	Create(u *entity.User) error

	// FindByNome busca usuários pelo nome de exibição, sem diferenciar
	// maiúsculas/minúsculas. Devolve todos os que casarem: o login só é
	// aceito quando o resultado é exatamente um.
	FindByNome(nome string) ([]*entity.User, error)
}
