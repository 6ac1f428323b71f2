package arenajson

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts parsing and arena activity. A nil *Metrics records nothing.
type Metrics struct {
	documentsParsed prometheus.Counter
	fragmentsParsed prometheus.Counter
	parseFailures   prometheus.Counter
	inputBytes      prometheus.Counter
	pagesAllocated  prometheus.Counter
	bytesReserved   prometheus.Counter
}

// NewMetrics creates the metrics and registers them with r.
func NewMetrics(r prometheus.Registerer) *Metrics {
	return &Metrics{
		documentsParsed: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_documents_parsed_total",
			Help: "Total number of documents parsed successfully.",
		}),
		fragmentsParsed: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_fragments_parsed_total",
			Help: "Total number of fragments parsed into existing documents by mutations.",
		}),
		parseFailures: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_parse_failures_total",
			Help: "Total number of documents or fragments that failed to parse.",
		}),
		inputBytes: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_input_bytes_total",
			Help: "Total number of bytes of JSON text handed to the parser.",
		}),
		pagesAllocated: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_arena_pages_allocated_total",
			Help: "Total number of arena pages allocated.",
		}),
		bytesReserved: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "arenajson_arena_bytes_reserved_total",
			Help: "Total number of bytes reserved by arena pages.",
		}),
	}
}

// PageAllocated implements the arena observer.
func (m *Metrics) PageAllocated(size int) {
	if m == nil {
		return
	}
	m.pagesAllocated.Inc()
	m.bytesReserved.Add(float64(size))
}

func (m *Metrics) observeParse(fragment bool, n int, err error) {
	if m == nil {
		return
	}
	m.inputBytes.Add(float64(n))
	switch {
	case err != nil:
		m.parseFailures.Inc()
	case fragment:
		m.fragmentsParsed.Inc()
	default:
		m.documentsParsed.Inc()
	}
}
