package entity

import "time"

// Balance representa o saldo atual de um insumo em uma VD (tabela estoque_logistica).
// O par (Loja, Produto) identifica o vínculo; Quantidade nunca fica negativa.
type Balance struct {
	ID                int64
	Loja              string
	Produto           string
	Quantidade        int64
	TipoUnidade       string // Unidade, Caixa ou Display (catálogo fixo)
	RegistradoPor     string
	UltimaAtualizacao time.Time
}
