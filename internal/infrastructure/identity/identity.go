// Package identity implementa o colaborador de identidade sobre a tabela
// auth_contas, com hash bcrypt. Substitui o serviço de auth hospedado que a
// operação usava, atrás da mesma porta access.IdentityProvider.
package identity

import (
	"context"
	"fmt"

	"github.com/gmslog/insumos-api/internal/application/access"
	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var _ access.IdentityProvider = (*Provider)(nil)

// Provider verifica e cria contas de acesso.
type Provider struct {
	pool *pgxpool.Pool
}

// NewProvider constrói o provedor de identidade.
func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{pool: pool}
}

// Verify confere a senha contra as contas da chave de login.
// Logins repetidos (provisionamentos com o mesmo nome) são tolerados: basta
// uma conta casar. Nenhum detalhe do motivo da rejeição é exposto.
func (p *Provider) Verify(login, senha string) error {
	rows, err := p.pool.Query(context.Background(),
		`SELECT senha_hash FROM auth_contas WHERE login = $1 ORDER BY id ASC`, login)
	if err != nil {
		return fmt.Errorf("verify login: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return fmt.Errorf("scan conta: %w", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("verify login: %w", err)
	}
	return domain.ErrInvalidCredentials
}

// CreateAccount cria uma conta com a senha hasheada (bcrypt) e devolve seu id.
func (p *Provider) CreateAccount(login, senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash senha: %w", err)
	}
	var id int64
	err = p.pool.QueryRow(context.Background(),
		`INSERT INTO auth_contas (login, senha_hash) VALUES ($1, $2) RETURNING id`,
		login, string(hash),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert conta: %w", err)
	}
	return fmt.Sprintf("%d", id), nil
}
