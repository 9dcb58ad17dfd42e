package framework_gin

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
)

// https://github.com/prometheus/client_golang/blob/main/examples/exemplars/main.go
var opsProcessed *prometheus.CounterVec
var opsHistogramProcessed *prometheus.HistogramVec
var opsSummaryProcessed *prometheus.SummaryVec
var setupOnce sync.Once

// Setup registers the response metrics under the given prefix. Only the first call registers,
// the default registry rejects a second registration of the same names.
func Setup(prefix string) {
	setupOnce.Do(func() {
		opsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_response_count",
			Help: "The total number of calls processed, regardless of status code",
		}, []string{"code", "full_path_with_method"})

		opsHistogramProcessed = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_response_latency_histogram",
			Help:    "The response latency in ms of successful calls",
			Buckets: prometheus.ExponentialBuckets(4, 2, 6),
		}, []string{"full_path_with_method"})

		opsSummaryProcessed = promauto.NewSummaryVec(prometheus.SummaryOpts{
			Name: prefix + "_response_latency_summary",
			Help: "The response latency in ms of successful calls",
		}, []string{"full_path_with_method"})
	})
}

// ================================================================================================
// timing middleware - wraps the writer, so that it can still add headers when the status is set
// ================================================================================================

// https://github.com/gin-gonic/gin/issues/2406#issuecomment-1485704921
type timingMiddlewareWriter struct {
	gin.ResponseWriter
	start time.Time
	c     *gin.Context
	log   zerolog.Logger
}

func (w *timingMiddlewareWriter) WriteHeader(statusCode int) {
	if statusCode > 0 {
		elapsed := time.Since(w.start)
		w.log.Debug().Int("status", statusCode).Dur("elapsed", elapsed).Msg("timer ended")
		w.Header().Set("x-time", fmt.Sprintf("%v", elapsed.Milliseconds()))

		fpwm := w.c.Request.Method + " " + w.c.FullPath()
		code := fmt.Sprintf("%d", statusCode)

		if opsProcessed != nil {
			opsProcessed.With(prometheus.Labels{"code": code, "full_path_with_method": fpwm}).Inc()
			if statusCode >= 200 && statusCode < 300 {
				opsHistogramProcessed.With(prometheus.Labels{"full_path_with_method": fpwm}).Observe(float64(elapsed.Milliseconds()))
				opsSummaryProcessed.With(prometheus.Labels{"full_path_with_method": fpwm}).Observe(float64(elapsed.Milliseconds()))
			}
		}

		// fetch the span again, in case it has now changed
		span := trace.SpanFromContext(w.c.Request.Context())
		w.Header().Set("x-trace-id", span.SpanContext().TraceID().String())
	} // else sometimes the framework calls this when the status isn't actually set to a proper number
	w.ResponseWriter.WriteHeader(statusCode)
}

func TimingMiddleware(c *gin.Context) {
	log := logging.GetLog("framework_gin")
	log.Debug().Msgf("timer starting '%s %s'...", c.Request.Method, c.Request.URL.String())

	c.Writer = &timingMiddlewareWriter{c.Writer, time.Now(), c, log}
	c.Next()
}
