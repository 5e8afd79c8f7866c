package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementação de BalanceRepository sobre PostgreSQL (usável com pool ou tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository constrói o adaptador de saldos. Passar pool ou tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

const balanceColumns = `id, loja, produto, quantidade, tipo_unidade, registrado_por, ultima_atualizacao`

// FindByPair devolve todos os registros do par (loja, produto), menor id primeiro.
func (r *BalanceRepo) FindByPair(loja, produto string) ([]*entity.Balance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_logistica WHERE loja = $1 AND produto = $2
		ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, loja, produto)
	if err != nil {
		return nil, fmt.Errorf("find balance by pair: %w", err)
	}
	defer rows.Close()
	var list []*entity.Balance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetForUpdate devolve o registro de menor id do par bloqueando a linha (FOR UPDATE).
// Devolve nil se o par nunca foi vinculado.
func (r *BalanceRepo) GetForUpdate(loja, produto string) (*entity.Balance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_logistica WHERE loja = $1 AND produto = $2
		ORDER BY id ASC LIMIT 1
		FOR UPDATE`
	var b entity.Balance
	err := r.q.QueryRow(context.Background(), query, loja, produto).Scan(
		&b.ID, &b.Loja, &b.Produto, &b.Quantidade, &b.TipoUnidade,
		&b.RegistradoPor, &b.UltimaAtualizacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// UpdateQuantidade grava o novo saldo, quem registrou e quando.
func (r *BalanceRepo) UpdateQuantidade(id int64, quantidade int64, registradoPor string, quando time.Time) error {
	query := `
		UPDATE estoque_logistica
		SET quantidade = $2, registrado_por = $3, ultima_atualizacao = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantidade, registradoPor, quando)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Create insere um novo vínculo loja/produto.
// Violação do índice único do par vira domain.ErrAlreadyLinked (corrida entre dois vínculos).
func (r *BalanceRepo) Create(b *entity.Balance) error {
	query := `
		INSERT INTO estoque_logistica (loja, produto, quantidade, tipo_unidade, registrado_por, ultima_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		b.Loja, b.Produto, b.Quantidade, b.TipoUnidade, b.RegistradoPor, b.UltimaAtualizacao,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyLinked
		}
		return fmt.Errorf("insert balance: %w", err)
	}
	return nil
}

// List devolve saldos ordenados por (loja, produto). Lojas vazio = todas.
func (r *BalanceRepo) List(lojas []string) ([]*entity.Balance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM estoque_logistica`
	args := []any{}
	if len(lojas) > 0 {
		query += ` WHERE loja = ANY($1)`
		args = append(args, lojas)
	}
	query += ` ORDER BY loja ASC, produto ASC, id ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Balance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Delete remove um vínculo pelo id.
func (r *BalanceRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM estoque_logistica WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBalance(rows pgx.Rows) (*entity.Balance, error) {
	var b entity.Balance
	if err := rows.Scan(&b.ID, &b.Loja, &b.Produto, &b.Quantidade, &b.TipoUnidade,
		&b.RegistradoPor, &b.UltimaAtualizacao); err != nil {
		return nil, fmt.Errorf("scan balance: %w", err)
	}
	return &b, nil
}
