package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// https://github.com/prometheus/client_golang/blob/main/examples/exemplars/main.go
var dispatched = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mtypes_dispatch_total",
	Help: "The number of operators and functions applied, by operator and the kind it was evaluated in",
}, []string{"op", "kind"})

var dispatchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mtypes_dispatch_errors_total",
	Help: "The number of operators and functions that failed, by operator and error",
}, []string{"op", "error"})

// counts one successful evaluation of `op` in the given kind
func Dispatched(op string, kind string) {
	dispatched.WithLabelValues(op, kind).Inc()
}

// counts one failed evaluation of `op`. `reason` should be a short, bounded label such as the
// error code, never the full message.
func Failed(op string, reason string) {
	dispatchErrors.WithLabelValues(op, reason).Inc()
}

func DispatchedCounter(op string, kind string) prometheus.Counter {
	return dispatched.WithLabelValues(op, kind)
}

func FailedCounter(op string, reason string) prometheus.Counter {
	return dispatchErrors.WithLabelValues(op, reason)
}

// the default registry, for hosts that want to expose the counters next to their own
func Handler() http.Handler {
	return promhttp.Handler()
}
