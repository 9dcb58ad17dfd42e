package framework_gin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
)

const METRICS_PREFIX = "mtcalc"

// NewRouter assembles the HTTP surface: tracing, timing, /ping, /metrics and the calculator. The
// returned function stops the trace exporter.
func NewRouter(buildNumber string) (*gin.Engine, func(context.Context) error) {
	Setup(METRICS_PREFIX)

	router := gin.New()
	router.Use(gin.Recovery())
	shutdown := InitTracer(METRICS_PREFIX, router)
	router.Use(TimingMiddleware)

	AddPing(router, buildNumber)
	AddMetrics(router)
	AddCalculator(router)
	return router, shutdown
}

// Serve runs the router on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	log := logging.GetLog("framework_gin")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
