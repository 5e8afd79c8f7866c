package dto

import "time"

// MovimentacaoRequest body para POST /api/movimentacoes.
type MovimentacaoRequest struct {
	Loja       string `json:"loja,omitempty"` // ignorado para operador (usa a VD do token)
	Produto    string `json:"produto"`
	Tipo       string `json:"tipo"` // ENTRADA | SAÍDA
	Quantidade int64  `json:"quantidade"`
}

// VinculoRequest body para POST /api/vinculos (vincular material a uma VD).
type VinculoRequest struct {
	Loja           string `json:"loja"`
	Produto        string `json:"produto"`
	TipoUnidade    string `json:"tipo_unidade"`
	EstoqueInicial int64  `json:"estoque_inicial"`
}

// SaldoResponse saldo atual de um material em uma VD.
// Duplicado=true sinaliza registros duplicados legados para o par (anomalia de dados):
// o saldo mostrado é o do registro de menor id.
type SaldoResponse struct {
	ID                int64     `json:"id"`
	Loja              string    `json:"loja"`
	Produto           string    `json:"produto"`
	Quantidade        int64     `json:"quantidade"`
	TipoUnidade       string    `json:"tipo_unidade"`
	RegistradoPor     string    `json:"registrado_por"`
	UltimaAtualizacao time.Time `json:"ultima_atualizacao"`
	Duplicado         bool      `json:"duplicado,omitempty"`
}

// MovimentacaoResponse registro de auditoria devolvido após uma movimentação.
type MovimentacaoResponse struct {
	ID                    string    `json:"id"`
	VD                    string    `json:"vd"`
	Produto               string    `json:"produto"`
	Tipo                  string    `json:"tipo"`
	QuantidadeMovimentada int64     `json:"quantidade_movimentada"`
	SaldoAnterior         int64     `json:"saldo_anterior"`
	SaldoNovo             int64     `json:"saldo_novo"`
	Usuario               string    `json:"usuario"`
	DataMovimentacao      time.Time `json:"data_movimentacao"`
}
