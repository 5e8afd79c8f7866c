package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "ENTRADA"
	TipoSaida   = "SAÍDA"
)

// Movement registro imutável de auditoria de uma movimentação (historico_movimentacao).
// Invariante: SaldoNovo = SaldoAnterior + QuantidadeMovimentada (ENTRADA) ou
// SaldoAnterior - QuantidadeMovimentada (SAÍDA), e SaldoNovo >= 0.
type Movement struct {
	ID                    string
	VD                    string
	Produto               string
	Tipo                  string // ENTRADA | SAÍDA
	QuantidadeMovimentada int64  // sempre positiva
	SaldoAnterior         int64
	SaldoNovo             int64
	Usuario               string
	DataMovimentacao      time.Time // atribuída pelo servidor
}
