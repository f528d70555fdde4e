package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "football-stats/internal/usecase"

// startUsecaseSpan opens the span for one command. CLI commands have no
// incoming request, so the span becomes a root when ctx carries none. The
// global provider is a no-op until tracing is configured.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func selectorAttributes(sel SeasonSelector) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("football.competition", sel.Competition),
		attribute.Int("football.season_year", sel.Year),
	}
	if sel.Country != "" {
		attrs = append(attrs, attribute.String("football.country", sel.Country))
	}
	return attrs
}
