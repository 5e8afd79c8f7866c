package postgres

import (
	"context"
	"fmt"

	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/google/uuid"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de histórico. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um registro de movimentação. Nunca há update nem delete aqui.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historico_movimentacao (id, vd, produto, tipo, quantidade_movimentada, saldo_anterior, saldo_novo, usuario, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.VD, m.Produto, m.Tipo, m.QuantidadeMovimentada,
		m.SaldoAnterior, m.SaldoNovo, m.Usuario, m.DataMovimentacao,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devolve o histórico global, mais recente primeiro.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, vd, produto, tipo, quantidade_movimentada, saldo_anterior, saldo_novo, usuario, data_movimentacao
		FROM historico_movimentacao
		ORDER BY data_movimentacao DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.VD, &m.Produto, &m.Tipo, &m.QuantidadeMovimentada,
			&m.SaldoAnterior, &m.SaldoNovo, &m.Usuario, &m.DataMovimentacao); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
