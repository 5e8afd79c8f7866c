package catalog

// Catalog listas fixas da operação: VDs (lojas), materiais rastreados e unidades.
// São configuração externa compilada na inicialização, não entidades persistidas.
type Catalog struct {
	lojas    map[string]struct{}
	produtos map[string]struct{}
	unidades map[string]struct{}

	lojasOrd    []string
	produtosOrd []string
	unidadesOrd []string
}

// New monta o catálogo a partir das listas configuradas, preservando a ordem.
func New(lojas, produtos, unidades []string) *Catalog {
	c := &Catalog{
		lojas:    make(map[string]struct{}, len(lojas)),
		produtos: make(map[string]struct{}, len(produtos)),
		unidades: make(map[string]struct{}, len(unidades)),
	}
	for _, l := range lojas {
		if _, ok := c.lojas[l]; !ok {
			c.lojas[l] = struct{}{}
			c.lojasOrd = append(c.lojasOrd, l)
		}
	}
	for _, p := range produtos {
		if _, ok := c.produtos[p]; !ok {
			c.produtos[p] = struct{}{}
			c.produtosOrd = append(c.produtosOrd, p)
		}
	}
	for _, u := range unidades {
		if _, ok := c.unidades[u]; !ok {
			c.unidades[u] = struct{}{}
			c.unidadesOrd = append(c.unidadesOrd, u)
		}
	}
	return c
}

// HasLoja informa se o código de VD é conhecido.
func (c *Catalog) HasLoja(loja string) bool {
	_, ok := c.lojas[loja]
	return ok
}

// HasProduto informa se o material é conhecido.
func (c *Catalog) HasProduto(produto string) bool {
	_, ok := c.produtos[produto]
	return ok
}

// HasUnidade informa se o rótulo de unidade é conhecido.
func (c *Catalog) HasUnidade(unidade string) bool {
	_, ok := c.unidades[unidade]
	return ok
}

// Lojas devolve as VDs na ordem configurada.
func (c *Catalog) Lojas() []string { return c.lojasOrd }

// Produtos devolve os materiais na ordem configurada.
func (c *Catalog) Produtos() []string { return c.produtosOrd }

// Unidades devolve os rótulos de unidade na ordem configurada.
func (c *Catalog) Unidades() []string { return c.unidadesOrd }
