package wavestore

import (
	"fmt"

	"github.com/wavebench/gwave/errs"
	"github.com/wavebench/gwave/format"
	"github.com/wavebench/gwave/hier"
	"github.com/wavebench/gwave/signal"
)

// Sink is the external-collaborator interface the signal-section reader
// drives (spec.md §4.9): one Emit call per decoded sample, in non-decreasing
// time order overall and with emission order preserved per handle, followed
// by exactly one Finish call.
type Sink interface {
	Emit(handle signal.Handle, timeFS int64, value Value) error
	Finish() (*Store, error)
}

var _ Sink = (*Encoder)(nil)

// Encoder is the reference Sink: one column pair per observed signal
// handle, accumulated in memory and compressed on Finish.
type Encoder struct {
	hierarchy *hier.Hierarchy
	tsCodec   format.CompressionType
	valCodec  format.CompressionType

	lastTime int64
	started  bool
	finished bool

	columns map[signal.Handle]*column
	order   []signal.Handle
}

type column struct {
	ts     *encTS
	values *encVal
	count  int
}

// New creates an Encoder bound to a frozen Hierarchy, per spec.md §4.9's
// "new(&hierarchy) -> opaque encoder".
func New(hierarchy *hier.Hierarchy, opts ...Option) *Encoder {
	e := &Encoder{
		hierarchy: hierarchy,
		tsCodec:   format.CompressionS2,
		valCodec:  format.CompressionS2,
		columns:   make(map[signal.Handle]*column),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit records one decoded sample against handle's column.
func (e *Encoder) Emit(handle signal.Handle, timeFS int64, value Value) error {
	if e.finished {
		panic("wavestore: encoder already finished")
	}
	if e.started && timeFS < e.lastTime {
		return fmt.Errorf("%w: %d < %d", errs.ErrNonMonotonicTime, timeFS, e.lastTime)
	}
	e.started, e.lastTime = true, timeFS

	col, ok := e.columns[handle]
	if !ok {
		col = &column{ts: newEncTS(), values: newEncVal(value.Encoding)}
		e.columns[handle] = col
		e.order = append(e.order, handle)
	}
	col.ts.append(timeFS)
	if err := col.values.append(value); err != nil {
		return err
	}
	col.count++
	return nil
}

// Finish compresses every column and returns the queryable Store, per
// spec.md §4.9's "finish -> reader handle retained on the resulting
// waveform".
func (e *Encoder) Finish() (*Store, error) {
	if e.finished {
		panic("wavestore: encoder already finished")
	}
	e.finished = true

	s := &Store{hierarchy: e.hierarchy, signals: make(map[signal.Handle]*storedSignal, len(e.order))}
	for _, h := range e.order {
		col := e.columns[h]
		stored, err := col.finish(e.tsCodec, e.valCodec)
		if err != nil {
			return nil, err
		}
		s.signals[h] = stored
		s.order = append(s.order, h)
	}
	return s, nil
}
