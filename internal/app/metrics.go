package app

import "github.com/prometheus/client_golang/prometheus"

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

// Metrics counts game activity.
type Metrics struct {
	GamesCreated prometheus.Counter
	Moves        *prometheus.CounterVec
	Jumps        *prometheus.CounterVec
}

// NewMetrics builds the counters and registers them on reg when non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tictactoe_games_created_total",
			Help: "Total games created",
		}),
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_moves_total",
				Help: "Total move intents by result",
			},
			[]string{"result"},
		),
		Jumps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_jumps_total",
				Help: "Total history jump intents by result",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.GamesCreated, m.Moves, m.Jumps)
	}
	return m
}

func result(ok bool) string {
	if ok {
		return resultAccepted
	}
	return resultRejected
}
