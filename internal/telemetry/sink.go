package telemetry

import (
	"context"
	"errors"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// MultiSink fans a funnel record out to several sinks. Every sink is
// called; their errors are joined.
type MultiSink []port.AnalyticsSink

// Record implements port.AnalyticsSink.
func (s MultiSink) Record(ctx context.Context, rec domain.FunnelRecord) error {
	var errs []error
	for _, sink := range s {
		if err := sink.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
