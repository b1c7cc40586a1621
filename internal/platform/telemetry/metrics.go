package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrCommand = attribute.Key("board.command")
	AttrResult  = attribute.Key("result")
)

// ResultOK labels a successful command. Failed commands are labelled with
// their error kind ("validation", "conflict", "not_found", "forbidden") or
// ResultError when the failure is not a classified domain error.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the board command instruments.
type Metrics struct {
	CommandTotal    metric.Int64Counter
	CommandDuration metric.Float64Histogram
}

// NewMetrics registers the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(InstrumentationName)

	total, err := meter.Int64Counter(
		"board.command.total",
		metric.WithDescription("Board commands handled, by command and result"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating board.command.total: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"board.command.duration",
		metric.WithDescription("Time to load, apply and save one board command"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating board.command.duration: %w", err)
	}

	return &Metrics{CommandTotal: total, CommandDuration: duration}, nil
}

// RecordCommand adds one sample for command. A nil *Metrics records nothing.
func (m *Metrics) RecordCommand(ctx context.Context, command, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrCommand.String(command), AttrResult.String(result))
	m.CommandTotal.Add(ctx, 1, attrs)
	m.CommandDuration.Record(ctx, elapsed.Seconds(), attrs)
}
