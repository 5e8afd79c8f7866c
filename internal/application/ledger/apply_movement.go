package ledger

import (
	"context"
	"time"

	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/internal/domain/repository"
	"github.com/google/uuid"
)

// MovimentacaoInput entrada para registrar uma movimentação de estoque.
// Role e LojaResponsavel vêm da sessão, nunca do body.
type MovimentacaoInput struct {
	Loja            string
	Produto         string
	Tipo            string // ENTRADA | SAÍDA
	Quantidade      int64
	Usuario         string
	Role            entity.Role
	LojaResponsavel string
}

// ApplyMovement registra uma movimentação de forma transacional: bloqueia a linha do
// saldo (SELECT FOR UPDATE), valida o novo saldo e grava saldo + histórico na mesma
// transação. Commit só acontece com os dois escritos; qualquer falha desfaz ambos.
//
// O bloqueio de linha fecha a corrida de dois operadores confirmando sobre o mesmo
// par ao mesmo tempo: o segundo espera o commit do primeiro e lê o saldo já atualizado.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, in MovimentacaoInput) (*entity.Movement, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Tipo {
	case entity.TipoEntrada, entity.TipoSaida:
	default:
		return nil, domain.ErrInvalidInput
	}
	if !uc.cat.HasLoja(in.Loja) || !uc.cat.HasProduto(in.Produto) {
		return nil, domain.ErrInvalidInput
	}

	// Operador só movimenta a própria VD; admin movimenta qualquer uma.
	switch in.Role {
	case entity.RoleAdmin:
	case entity.RoleOperador:
		if in.Loja != in.LojaResponsavel {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	var result *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.MovementRepository,
	) error {
		saldo, err := balanceRepo.GetForUpdate(in.Loja, in.Produto)
		if err != nil {
			return err
		}
		if saldo == nil {
			return domain.ErrNotLinked
		}

		anterior := saldo.Quantidade
		novo := anterior + in.Quantidade
		if in.Tipo == entity.TipoSaida {
			novo = anterior - in.Quantidade
		}
		if novo < 0 {
			return domain.ErrInsufficientSaldo
		}

		now := time.Now()
		if err := balanceRepo.UpdateQuantidade(saldo.ID, novo, in.Usuario, now); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:                    uuid.New().String(),
			VD:                    in.Loja,
			Produto:               in.Produto,
			Tipo:                  in.Tipo,
			QuantidadeMovimentada: in.Quantidade,
			SaldoAnterior:         anterior,
			SaldoNovo:             novo,
			Usuario:               in.Usuario,
			DataMovimentacao:      now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		result = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("vd", result.VD).
		Str("produto", result.Produto).
		Str("tipo", result.Tipo).
		Int64("quantidade", result.QuantidadeMovimentada).
		Int64("saldo_novo", result.SaldoNovo).
		Str("usuario", result.Usuario).
		Msg("movimentação registrada")

	return result, nil
}
