package metrics

import "github.com/prometheus/client_golang/prometheus"

// MovementMetrics contadores das movimentações de estoque.
type MovementMetrics struct {
	registered *prometheus.CounterVec
	rejected   *prometheus.CounterVec
}

// NewMovementMetrics registra os contadores no registerer informado.
// Com reg nil devolve uma instância inerte (métodos viram no-op).
func NewMovementMetrics(reg prometheus.Registerer) *MovementMetrics {
	if reg == nil {
		return &MovementMetrics{}
	}
	registered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movimentacoes_registradas_total",
		Help: "Movimentações de estoque confirmadas, por VD e tipo.",
	}, []string{"vd", "tipo"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movimentacoes_rejeitadas_total",
		Help: "Movimentações rejeitadas, por motivo.",
	}, []string{"motivo"})
	reg.MustRegister(registered, rejected)
	return &MovementMetrics{registered: registered, rejected: rejected}
}

// IncRegistered conta uma movimentação confirmada.
func (m *MovementMetrics) IncRegistered(vd, tipo string) {
	if m == nil || m.registered == nil {
		return
	}
	m.registered.WithLabelValues(vd, tipo).Inc()
}

// IncRejected conta uma movimentação rejeitada pelo motivo dado.
func (m *MovementMetrics) IncRejected(motivo string) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(motivo).Inc()
}
