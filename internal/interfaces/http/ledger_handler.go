package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gmslog/insumos-api/internal/application/dto"
	"github.com/gmslog/insumos-api/internal/application/ledger"
	"github.com/gmslog/insumos-api/internal/domain"
	"github.com/gmslog/insumos-api/internal/domain/catalog"
	"github.com/gmslog/insumos-api/internal/domain/entity"
	"github.com/gmslog/insumos-api/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// LedgerHandler trata saldos, movimentações, histórico e vínculos.
type LedgerHandler struct {
	uc      *ledger.LedgerUseCase
	cat     *catalog.Catalog
	metrics *metrics.MovementMetrics
}

// NewLedgerHandler constrói o handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase, cat *catalog.Catalog, m *metrics.MovementMetrics) *LedgerHandler {
	return &LedgerHandler{uc: uc, cat: cat, metrics: m}
}

// ListEstoque godoc
// @Summary      Saldos atuais
// @Description  Operador vê somente a própria VD; admin pode filtrar com ?lojas=a;b.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaldoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/estoque [get]
func (h *LedgerHandler) ListEstoque(c *fiber.Ctx) error {
	var filtro []string
	if raw := c.Query("lojas"); raw != "" {
		for _, l := range strings.Split(raw, ";") {
			if s := strings.TrimSpace(l); s != "" {
				filtro = append(filtro, s)
			}
		}
	}
	list, err := h.uc.ListBalances(entity.Role(GetRole(c)), GetLoja(c), filtro)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SaldoResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toSaldoResponse(b, false))
	}
	return c.JSON(out)
}

// GetSaldo godoc
// @Summary      Saldo de um material em uma VD
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        loja     query  string  true  "código da VD"
// @Param        produto  query  string  true  "material"
// @Success      200  {object}  dto.SaldoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/saldo [get]
func (h *LedgerHandler) GetSaldo(c *fiber.Ctx) error {
	loja := c.Query("loja")
	produto := c.Query("produto")
	if loja == "" || produto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "loja e produto são obrigatórios"})
	}
	// Operador só consulta a própria VD.
	if entity.Role(GetRole(c)) == entity.RoleOperador && loja != GetLoja(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operador só consulta a própria VD"})
	}
	b, duplicado, err := h.uc.GetBalance(loja, produto)
	if err != nil {
		if errors.Is(err, domain.ErrNotLinked) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_LINKED", Message: "material não vinculado a esta loja, vincule primeiro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSaldoResponse(b, duplicado))
}

// RegisterMovimentacao godoc
// @Summary      Registrar movimentação (ENTRADA ou SAÍDA)
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentacaoRequest  true  "loja (admin), produto, tipo, quantidade"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *LedgerHandler) RegisterMovimentacao(c *fiber.Ctx) error {
	var in dto.MovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	role := entity.Role(GetRole(c))
	loja := in.Loja
	if role == entity.RoleOperador {
		// Operador sempre movimenta a própria VD, ignorando o body.
		loja = GetLoja(c)
	}
	mov, err := h.uc.ApplyMovement(c.Context(), ledger.MovimentacaoInput{
		Loja:            loja,
		Produto:         in.Produto,
		Tipo:            in.Tipo,
		Quantidade:      in.Quantidade,
		Usuario:         GetNome(c),
		Role:            role,
		LojaResponsavel: GetLoja(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.metrics.IncRejected("validacao")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		case errors.Is(err, domain.ErrForbidden):
			h.metrics.IncRejected("acesso")
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado à VD"})
		case errors.Is(err, domain.ErrNotLinked):
			h.metrics.IncRejected("nao_vinculado")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_LINKED", Message: "material não vinculado a esta loja, vincule primeiro"})
		case errors.Is(err, domain.ErrInsufficientSaldo):
			h.metrics.IncRejected("saldo_insuficiente")
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente para essa saída"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.metrics.IncRegistered(mov.VD, mov.Tipo)
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// ListHistorico godoc
// @Summary      Histórico global de movimentações
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de registros (padrão 50)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/historico [get]
func (h *LedgerHandler) ListHistorico(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListHistory(entity.Role(GetRole(c)), page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "histórico é restrito a admin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

// CreateVinculo godoc
// @Summary      Vincular material a uma VD com saldo inicial
// @Tags         vinculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VinculoRequest  true  "loja, produto, tipo_unidade, estoque_inicial"
// @Success      201   {object}  dto.SaldoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vinculos [post]
func (h *LedgerHandler) CreateVinculo(c *fiber.Ctx) error {
	var in dto.VinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	b, err := h.uc.LinkProduto(ledger.LinkInput{
		Loja:           in.Loja,
		Produto:        in.Produto,
		TipoUnidade:    in.TipoUnidade,
		EstoqueInicial: in.EstoqueInicial,
		Usuario:        GetNome(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "loja, produto e unidade devem ser do catálogo; estoque inicial não pode ser negativo"})
		case errors.Is(err, domain.ErrAlreadyLinked):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_LINKED", Message: "este item já está vinculado a esta loja, use movimentação para alterar o saldo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toSaldoResponse(b, false))
}

// DeleteVinculo godoc
// @Summary      Desvincular material (remove o registro de saldo)
// @Description  Não apaga o histórico: auditoria é imutável.
// @Tags         vinculos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id do registro de saldo"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vinculos/{id} [delete]
func (h *LedgerHandler) DeleteVinculo(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.UnlinkProduto(entity.Role(GetRole(c)), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "somente admin desvincula materiais"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vínculo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "vínculo removido"})
}

// GetCatalogo godoc
// @Summary      Listas fixas de VDs, materiais e unidades
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/catalogo [get]
func (h *LedgerHandler) GetCatalogo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"lojas":    h.cat.Lojas(),
		"produtos": h.cat.Produtos(),
		"unidades": h.cat.Unidades(),
	})
}

func toSaldoResponse(b *entity.Balance, duplicado bool) dto.SaldoResponse {
	return dto.SaldoResponse{
		ID:                b.ID,
		Loja:              b.Loja,
		Produto:           b.Produto,
		Quantidade:        b.Quantidade,
		TipoUnidade:       b.TipoUnidade,
		RegistradoPor:     b.RegistradoPor,
		UltimaAtualizacao: b.UltimaAtualizacao,
		Duplicado:         duplicado,
	}
}

func toMovimentacaoResponse(m *entity.Movement) dto.MovimentacaoResponse {
	return dto.MovimentacaoResponse{
		ID:                    m.ID,
		VD:                    m.VD,
		Produto:               m.Produto,
		Tipo:                  m.Tipo,
		QuantidadeMovimentada: m.QuantidadeMovimentada,
		SaldoAnterior:         m.SaldoAnterior,
		SaldoNovo:             m.SaldoNovo,
		Usuario:               m.Usuario,
		DataMovimentacao:      m.DataMovimentacao,
	}
}
