package indexer

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/solindex/internal/indexer"

// instruments groups the counters recorded by the engine. They are bound to
// the global providers, which are no-ops until telemetry.Init runs.
type instruments struct {
	tracer trace.Tracer

	passes        metric.Int64Counter
	saved         metric.Int64Counter
	dropped       metric.Int64Counter
	fetchFailures metric.Int64Counter
	saveFailures  metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	passes, _ := meter.Int64Counter("indexer.passes",
		metric.WithDescription("Indexing passes executed"))
	saved, _ := meter.Int64Counter("indexer.records.saved",
		metric.WithDescription("Records persisted to storage"))
	dropped, _ := meter.Int64Counter("indexer.records.dropped",
		metric.WithDescription("Records discarded by the processor chain"))
	fetchFailures, _ := meter.Int64Counter("indexer.fetch.failures",
		metric.WithDescription("Ledger lookups that failed and were skipped"))
	saveFailures, _ := meter.Int64Counter("indexer.save.failures",
		metric.WithDescription("Storage writes that failed and aborted their unit"))

	return instruments{
		tracer:        otel.Tracer(instrumentationName),
		passes:        passes,
		saved:         saved,
		dropped:       dropped,
		fetchFailures: fetchFailures,
		saveFailures:  saveFailures,
	}
}
