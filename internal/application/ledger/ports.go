package ledger

import (
	"context"

	"github.com/gmslog/insumos-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante que a atualização de saldo e o registro de histórico
// sejam aplicados juntos ou nenhum dos dois.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
