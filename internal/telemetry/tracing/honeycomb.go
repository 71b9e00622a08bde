package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// HoneycombSetup configures the OpenTelemetry SDK via the honeycomb distro.
// The returned shutdown func is a no-op when tracing is disabled.
func HoneycombSetup(enabled bool, serviceName string) (shutdown func(), err error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled, otel sdk not configured")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}
