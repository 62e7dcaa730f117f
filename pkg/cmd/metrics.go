package cmd

import (
	"context"
	"sort"

	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// metricsRegistry provides the metrics.Registry implementation that metrics are reported to.
var metricsRegistry = metrics.NewRegistry()

// LogMetrics writes the value of every metric recorded during the run to the debug log.
func LogMetrics(ctx context.Context) {
	logMetrics(zerolog.Ctx(ctx), metricsRegistry)
}

// logMetrics writes the metrics in registry to logger, ordered by name.
func logMetrics(logger *zerolog.Logger, registry metrics.Registry) {
	var names []string
	values := map[string]*zerolog.Event{}

	registry.Each(func(name string, i interface{}) {
		e := zerolog.Dict()
		switch m := i.(type) {
		case metrics.Counter:
			e.Int64("count", m.Count())
		case metrics.Meter:
			e.Int64("count", m.Count())
		case metrics.Timer:
			e.Int64("count", m.Count()).Float64("meanMillis", m.Mean()/1e6)
		case metrics.Gauge:
			e.Int64("value", m.Value())
		default:
			return
		}
		names = append(names, name)
		values[name] = e
	})

	sort.Strings(names)
	for _, name := range names {
		logger.Debug().Dict(name, values[name]).Msg("Metric")
	}
}
