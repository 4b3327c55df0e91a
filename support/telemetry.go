package support

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/we"
)

// Tracing is the installed tracer provider. Flush is a no-op when no
// exporter was configured.
type Tracing struct {
	Provider  *trace.TracerProvider
	exporting bool
}

func (t *Tracing) Flush(ctx context.Context) error {
	if t == nil || !t.exporting {
		return nil
	}

	return t.Provider.ForceFlush(ctx)
}

// TracerProvider installs the exporter named by cfg.TraceExporter and
// returns a cleanup that shuts it down.
func TracerProvider(ctx context.Context, cfg Config) (*Tracing, func(), error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "", "none":
	case "console":
		exporter, err = we.ConsoleExporter()
	case "otlp":
		exporter, err = we.OTLPExporter(ctx, cfg.OTLPEndpoint, cfg.OTLPHeaders)
	case "jaeger":
		exporter, err = we.JaegerExporter(cfg.JaegerEndpoint)
	default:
		return nil, nil, errors.Errorf("unknown trace exporter %q", cfg.TraceExporter)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s exporter", cfg.TraceExporter)
	}

	provider := we.InstallTracerProvider(exporter)
	cleanup := func() {
		_ = provider.Shutdown(context.Background())
	}

	return &Tracing{Provider: provider, exporting: exporter != nil}, cleanup, nil
}
