package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adarshrangare/portfolio/terminal"
)

// Outcome labels for submitted commands.
const (
	outcomeOK      = "ok"
	outcomeUnknown = "unknown"
	outcomeClear   = "clear"
)

type metrics struct {
	commands *prometheus.CounterVec
	sessions prometheus.Gauge
	handler  http.Handler
}

// newMetrics registers the terminal collectors on a private registry so
// several servers can coexist in one process (tests).
func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_terminal_commands_total",
				Help: "Terminal submissions by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_terminal_sessions",
			Help: "Terminal sessions currently held in memory",
		}),
	}
	reg.MustRegister(m.commands, m.sessions)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// classify returns the label pair for a resolved submission. Unknown input
// is collapsed so visitors cannot grow label cardinality.
func classify(res terminal.Result) (command, outcome string) {
	switch {
	case res.Reset:
		return terminal.ClearCommand, outcomeClear
	case res.Found:
		return res.Command, outcomeOK
	default:
		return "", outcomeUnknown
	}
}

func (m *metrics) observe(res terminal.Result) {
	command, outcome := classify(res)
	m.commands.WithLabelValues(command, outcome).Inc()
}
