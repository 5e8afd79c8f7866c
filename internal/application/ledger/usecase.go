package ledger

import (
	"time"

	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/catalog"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/gmslog/insumos-api/pkg/logger"
)

// LedgerUseCase operações sobre saldos e histórico: consulta, listagem,
// vínculo/desvínculo de materiais e aplicação de movimentações.
type LedgerUseCase struct {
	txRunner     TxRunner
	balanceRepo  repository.BalanceRepository
	movementRepo repository.MovementRepository
	cat          *catalog.Catalog
	log          *logger.Logger
}

// NewLedgerUseCase constrói o caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	balanceRepo repository.BalanceRepository,
	movementRepo repository.MovementRepository,
	cat *catalog.Catalog,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		balanceRepo:  balanceRepo,
		movementRepo: movementRepo,
		cat:          cat,
		log:          log,
	}
}

// GetBalance consulta o saldo atual do par (loja, produto).
// Devolve domain.ErrNotLinked se o material nunca foi vinculado à loja.
// Com registros duplicados legados, devolve o de menor id e duplicado=true
// (nunca soma nem mescla; o aviso fica no log e na resposta).
func (uc *LedgerUseCase) GetBalance(loja, produto string) (*entity.Balance, bool, error) {
	records, err := uc.balanceRepo.FindByPair(loja, produto)
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, domain.ErrNotLinked
	}
	duplicado := len(records) > 1
	if duplicado {
		uc.log.Warn().
			Str("loja", loja).
			Str("produto", produto).
			Int("registros", len(records)).
			Msg("registros duplicados de saldo para o par loja/produto")
	}
	return records[0], duplicado, nil
}

// ListBalances lista saldos ordenados por (loja, produto).
// Operador: o filtro é FORÇADO à sua VD de responsabilidade, independente do pedido
// (controle de acesso, não conveniência). Admin sem filtro: todas as lojas.
func (uc *LedgerUseCase) ListBalances(role entity.Role, lojaResponsavel string, filtro []string) ([]*entity.Balance, error) {
	switch role {
	case entity.RoleOperador:
		if lojaResponsavel == "" {
			return nil, domain.ErrForbidden
		}
		filtro = []string{lojaResponsavel}
	case entity.RoleAdmin:
		// mantém o filtro pedido (vazio = todas)
	default:
		return nil, domain.ErrForbidden
	}
	return uc.balanceRepo.List(filtro)
}

// ListHistory devolve o histórico global de movimentações, mais recentes primeiro.
// Somente admin.
func (uc *LedgerUseCase) ListHistory(role entity.Role, limit, offset int) ([]*entity.Movement, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.movementRepo.List(limit, offset)
}

// LinkInput entrada para vincular um material a uma VD.
type LinkInput struct {
	Loja           string
	Produto        string
	TipoUnidade    string
	EstoqueInicial int64
	Usuario        string
}

// LinkProduto cria o vínculo inicial loja/produto com saldo inicial.
// Se o par já existir devolve domain.ErrAlreadyLinked sem alterar nada:
// alterações de saldo passam por ApplyMovement, nunca por re-vínculo.
func (uc *LedgerUseCase) LinkProduto(in LinkInput) (*entity.Balance, error) {
	if in.EstoqueInicial < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !uc.cat.HasLoja(in.Loja) || !uc.cat.HasProduto(in.Produto) || !uc.cat.HasUnidade(in.TipoUnidade) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.balanceRepo.FindByPair(in.Loja, in.Produto)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrAlreadyLinked
	}
	b := &entity.Balance{
		Loja:              in.Loja,
		Produto:           in.Produto,
		Quantidade:        in.EstoqueInicial,
		TipoUnidade:       in.TipoUnidade,
		RegistradoPor:     in.Usuario,
		UltimaAtualizacao: time.Now(),
	}
	if err := uc.balanceRepo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// UnlinkProduto remove permanentemente um vínculo. Somente admin.
// Não apaga o histórico: auditoria é imutável e independente do vínculo.
func (uc *LedgerUseCase) UnlinkProduto(role entity.Role, recordID int64) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.balanceRepo.Delete(recordID)
}
