package repository

import (
	"time"

	"github.com/gmslog/insumos-api/internal/domain/entity"
)

// BalanceRepository porta de persistência dos saldos (estoque_logistica).
type BalanceRepository interface {
	// FindByPair devolve TODOS os registros do par (loja, produto), ordenados por id
	// crescente. O banco deveria ter no máximo um; duplicatas legadas são devolvidas
	// para que o caso de uso escolha deterministicamente e avise.
	FindByPair(loja, produto string) ([]*entity.Balance, error)

	// GetForUpdate devolve o registro do par bloqueando a linha (SELECT FOR UPDATE).
	// Com duplicatas, bloqueia e devolve o de menor id. Devolve nil se não vinculado.
	// Só faz sentido dentro de uma transação (via TxRunner).
	GetForUpdate(loja, produto string) (*entity.Balance, error)

	// UpdateQuantidade grava o novo saldo e quem registrou.
	UpdateQuantidade(id int64, quantidade int64, registradoPor string, quando time.Time) error

	// Create insere um novo vínculo loja/produto com saldo inicial.
	Create(b *entity.Balance) error

	// List devolve saldos ordenados por (loja, produto). Lojas vazio = todas.
	List(lojas []string) ([]*entity.Balance, error)

	// Delete remove um vínculo pelo id. Devolve domain.ErrNotFound se não existir.
	Delete(id int64) error
}
