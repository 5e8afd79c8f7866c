package repository

import "github.com/gmslog/insumos-api/internal/domain/entity"

// MovementRepository porta de persistência do histórico (historico_movimentacao).
// Registros são imutáveis: só inserção e leitura.
type MovementRepository interface {
	// Create insere o registro de auditoria de uma movimentação confirmada.
	Create(m *entity.Movement) error

	// List devolve o histórico ordenado por data_movimentacao decrescente.
	List(limit, offset int) ([]*entity.Movement, error)
}
