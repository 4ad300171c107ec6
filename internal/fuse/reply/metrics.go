package reply

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts reply traffic on a Conn. A nil *Metrics disables counting.
type Metrics struct {
	repliesSent   prometheus.Counter
	bytesWritten  prometheus.Counter
	writeFailures prometheus.Counter
}

// NewMetrics creates Metrics, registering the collectors with reg when reg
// is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		repliesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_replies_sent_total",
			Help: "Total number of replies successfully written to the kernel device.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_reply_bytes_written_total",
			Help: "Total reply bytes (headers and payloads) written to the kernel device.",
		}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_reply_write_failures_total",
			Help: "Total number of reply writes that failed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.repliesSent, m.bytesWritten, m.writeFailures)
	}
	return m
}

func (m *Metrics) wrote(n int) {
	if m == nil {
		return
	}
	m.repliesSent.Inc()
	m.bytesWritten.Add(float64(n))
}

func (m *Metrics) writeFailed() {
	if m == nil {
		return
	}
	m.writeFailures.Inc()
}
