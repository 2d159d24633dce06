package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

type Metrics struct {
	registry *prometheus.Registry

	SessionsCreated prometheus.Counter
	SessionsLive    prometheus.Gauge
	Actions         *prometheus.CounterVec
	Finished        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "sessions_created_total",
			Help:      "Game sessions started.",
		}),
		SessionsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "minesweeper",
			Name:      "sessions_live",
			Help:      "Game sessions currently held in memory.",
		}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "actions_total",
			Help:      "Player actions applied to sessions.",
		}, []string{"action"}),
		Finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "games_finished_total",
			Help:      "Games that reached a terminal state.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.SessionsCreated, m.SessionsLive, m.Actions, m.Finished,
		collectors.NewGoCollector(),
	)
	return m
}

// Observe records an action and, when it ended the game, the outcome.
func (m *Metrics) Observe(action string, before, after mines.GameState) {
	m.Actions.WithLabelValues(action).Inc()
	if !before.Terminal() && after.Terminal() {
		m.Finished.WithLabelValues(after.String()).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
