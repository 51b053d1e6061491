package wavestore

import (
	"fmt"

	"github.com/wavebench/gwave/compress"
	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/signal"
)

// Store is the frozen product of Encoder.Finish: a queryable, compressed
// column store, the reader handle the waveform retains per spec.md §4.9.
type Store struct {
	hierarchy *hier.Hierarchy
	signals   map[signal.Handle]*storedSignal
	order     []signal.Handle
}

// GetSamples decompresses and decodes the full sample sequence for handle.
func (s *Store) GetSamples(handle signal.Handle) ([]Sample, error) {
	stored, ok := s.signals[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownSignalSlot, handle)
	}
	return stored.samples()
}

// Handles returns every signal handle with at least one stored sample, in
// first-emission order.
func (s *Store) Handles() []signal.Handle {
	return append([]signal.Handle(nil), s.order...)
}

// ColumnStats reports the per-column compression outcome for handle, for
// use by Waveform.PrintBackendStatistics.
func (s *Store) ColumnStats(handle signal.Handle) (ts, val compress.CompressionStats, err error) {
	stored, ok := s.signals[handle]
	if !ok {
		return compress.CompressionStats{}, compress.CompressionStats{}, fmt.Errorf("%w: %d", errs.ErrUnknownSignalSlot, handle)
	}
	return stored.tsStats, stored.valStats, nil
}
