package gateway

import "github.com/prometheus/client_golang/prometheus"

// Call labels.
const (
	callSyllabus   = "syllabus"
	callFlashcards = "flashcards"
	callDoubt      = "doubt"
)

// Outcome labels.
const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

type metrics struct {
	requests *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studyflow_ai_requests_total",
			Help: "AI gateway requests by call and outcome.",
		}, []string{"call", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests)
	}
	return m
}

func (m *metrics) observe(call string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFailed
	}
	m.requests.WithLabelValues(call, outcome).Inc()
}
