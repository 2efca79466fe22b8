package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	IncidentsClassifiedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "incidents_classified_total",
			Help: "Número total de incidentes classificados",
		},
		[]string{"category"},
	)

	IncidentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "incident_amounts",
			Help:    "Distribuição dos valores perdidos por categoria",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
		[]string{"category"},
	)

	ClassificationFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "classification_fallbacks_total",
			Help: "Classificações que falharam e caíram em OTHER",
		},
	)

	ChargesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charges_created_total",
			Help: "Número total de cobranças PIX criadas",
		},
		[]string{"product"},
	)

	ChargeTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charge_transitions_total",
			Help: "Transições de estado das cobranças",
		},
		[]string{"status", "source"},
	)

	ReconciliationNoopsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciliation_noops_total",
			Help: "Confirmações que chegaram depois do estado final",
		},
		[]string{"source"},
	)

	GatewayPollErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_poll_errors_total",
			Help: "Falhas transitórias ao consultar o status no gateway",
		},
	)

	WebhookNotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_notifications_total",
			Help: "Notificações recebidas do gateway por resultado",
		},
		[]string{"result"},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_payment_sessions",
			Help: "Sessões de pagamento com polling ativo",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		IncidentsClassifiedTotal,
		IncidentAmounts,
		ClassificationFallbacksTotal,
		ChargesCreatedTotal,
		ChargeTransitionsTotal,
		ReconciliationNoopsTotal,
		GatewayPollErrorsTotal,
		WebhookNotificationsTotal,
		ActiveSessions,
	)
}
