package postgres

import (
	"context"
	"fmt"

	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação da porta UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste o perfil de um usuário.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, nome, login, nivel_acesso, loja_responsavel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Nome, user.Login, string(user.NivelAcesso), user.LojaResponsavel, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByNome busca usuários por nome sem diferenciar maiúsculas/minúsculas (ILIKE
// sem curinga = igualdade case-insensitive, como o login da operação sempre fez).
func (r *UserRepo) FindByNome(nome string) ([]*entity.User, error) {
	query := `
		SELECT id, nome, login, nivel_acesso, loja_responsavel, created_at
		FROM usuarios WHERE nome ILIKE $1
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, nome)
	if err != nil {
		return nil, fmt.Errorf("find user by nome: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var nivel string
		if err := rows.Scan(&u.ID, &u.Nome, &u.Login, &nivel, &u.LojaResponsavel, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.NivelAcesso = entity.Role(nivel)
		list = append(list, &u)
	}
	return list, rows.Err()
}
