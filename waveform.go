package gwave

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/signal"
	"github.com/wavebench/gwave/strtable"
	"github.com/wavebench/gwave/vhdltype"
	"github.com/wavebench/gwave/wavestore"
)

// Signal is a decoded signal's full value trajectory, in emission order.
type Signal struct {
	Handle  signal.Handle
	Samples []wavestore.Sample
}

// Waveform is the opaque handle returned by Read/ReadFromBytes (spec.md
// §6): the frozen hierarchy plus random access to every signal's decoded
// samples.
type Waveform struct {
	hierarchy *hier.Hierarchy
	strs      *strtable.Table
	types     *vhdltype.Table
	store     *wavestore.Store
	known     map[signal.Handle]bool
}

// Hierarchy returns the decoded design hierarchy.
func (w *Waveform) Hierarchy() *hier.Hierarchy { return w.hierarchy }

// LoadSignals confirms that every handle in handles was observed during the
// decode pass. The reference decoder performs a single eager sequential
// pass (spec.md §5 notes the directory-assisted seek fast path as a future
// parallelisation opportunity, not required today), so by the time Read
// returns every signal is already resident; LoadSignals exists to give
// callers a place to validate handles before calling GetSignal.
func (w *Waveform) LoadSignals(handles []signal.Handle) error {
	for _, h := range handles {
		if !w.known[h] {
			return fmt.Errorf("%w: %d", errs.ErrUnknownSignalSlot, h)
		}
	}
	return nil
}

// GetSignal returns the decoded sample trajectory for handle, or false if
// the handle was never observed during the decode pass.
func (w *Waveform) GetSignal(handle signal.Handle) (Signal, bool) {
	if !w.known[handle] {
		return Signal{}, false
	}
	samples, err := w.store.GetSamples(handle)
	if err != nil {
		return Signal{}, false
	}
	return Signal{Handle: handle, Samples: samples}, true
}
