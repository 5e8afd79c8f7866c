package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gmslog/insumos-api/internal/domain/catalog"
)

func TestCatalog_PertencimentoEOrdem(t *testing.T) {
	c := catalog.New(
		[]string{"23924-HUB", "23332-BARRA", "23924-HUB"}, // duplicata descartada
		[]string{"7 - Ribbon", "8 - Fita gomada"},
		[]string{"Unidade", "Caixa", "Display"},
	)

	assert.True(t, c.HasLoja("23924-HUB"))
	assert.False(t, c.HasLoja("00000-NADA"))
	assert.True(t, c.HasProduto("7 - Ribbon"))
	assert.False(t, c.HasProduto("ribbon"), "pertencimento é por igualdade exata")
	assert.True(t, c.HasUnidade("Caixa"))
	assert.False(t, c.HasUnidade("Pacote"))

	assert.Equal(t, []string{"23924-HUB", "23332-BARRA"}, c.Lojas(), "ordem configurada, sem duplicatas")
	assert.Equal(t, []string{"Unidade", "Caixa", "Display"}, c.Unidades())
}

func TestCatalog_Vazio(t *testing.T) {
	c := catalog.New(nil, nil, nil)
	assert.False(t, c.HasLoja(""))
	assert.Empty(t, c.Lojas())
	assert.Empty(t, c.Produtos())
	assert.Empty(t, c.Unidades())
}
