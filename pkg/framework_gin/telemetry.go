package framework_gin

// see https://github.com/SigNoz/sample-golang-app

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"google.golang.org/grpc/credentials"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/env"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
)

const (
	OTLP_ENDPOINT_NAME = "MTYPES_OTLP_ENDPOINT"
	OTLP_INSECURE_NAME = "MTYPES_OTLP_INSECURE"
)

// InitTracer adds the otelgin middleware to the router. When MTYPES_OTLP_ENDPOINT is set, spans are
// exported there over gRPC; otherwise the global no-op provider is kept. The returned function
// flushes and stops the exporter.
func InitTracer(prefix string, router *gin.Engine) func(context.Context) error {
	serviceName := prefix + "-" + env.Getenv()
	log := logging.GetLog("framework_gin")
	shutdown := func(context.Context) error { return nil }

	endpoint := os.Getenv(OTLP_ENDPOINT_NAME)
	if endpoint != "" {
		var secureOption otlptracegrpc.Option
		insecure := strings.ToLower(os.Getenv(OTLP_INSECURE_NAME))
		if insecure == "false" || insecure == "0" || insecure == "f" {
			secureOption = otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, ""))
		} else {
			secureOption = otlptracegrpc.WithInsecure()
		}

		exporter, err := otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				secureOption,
				otlptracegrpc.WithEndpoint(endpoint),
			),
		)
		if err != nil {
			log.Error().Err(err).Msgf("failed to create exporter for %s, tracing stays local", endpoint)
		} else {
			resources, err := resource.New(
				context.Background(),
				resource.WithAttributes(
					semconv.ServiceNamespaceKey.String(serviceName), // jaeger, https://stackoverflow.com/a/77755998/458370
					attribute.String("service.name", serviceName),
					attribute.String("library.language", "go"),
				),
			)
			if err != nil {
				log.Warn().Err(err).Msg("could not set all resources")
			}
			otel.SetTracerProvider(
				sdktrace.NewTracerProvider(
					sdktrace.WithSampler(sdktrace.AlwaysSample()),
					sdktrace.WithBatcher(exporter),
					sdktrace.WithResource(resources),
				),
			)
			log.Info().Msgf("exporting traces of %s to %s", serviceName, endpoint)
			shutdown = exporter.Shutdown
		}
	}

	router.Use(otelgin.Middleware(serviceName))
	return shutdown
}
