package gwave

import (
	"fmt"
	"io"
	"os"
)

// PrintBackendStatistics writes a human-readable summary of the decoded
// waveform's backend footprint to stdout: string-table and type-table
// sizes, hierarchy node counts, slot-table size, and (since every decode
// attaches an in-memory wave-store sink) per-signal space savings of the
// timestamp and value columns, as percentages.
// Named in spec.md §6 without a described format; this shape is grounded on
// mebo's CompressionStats/SpaceSavings reporting.
func (w *Waveform) PrintBackendStatistics() {
	w.FprintBackendStatistics(os.Stdout)
}

// FprintBackendStatistics writes the same report to an arbitrary writer,
// so callers and tests don't have to capture stdout.
func (w *Waveform) FprintBackendStatistics(out io.Writer) {
	fmt.Fprintf(out, "gwave backend statistics\n")
	fmt.Fprintf(out, "  strings:  %d\n", w.strs.Len())
	fmt.Fprintf(out, "  types:    %d\n", w.types.Len())

	scopeCount, varCount := 0, 0
	for range w.hierarchy.IterScopes() {
		scopeCount++
	}
	for range w.hierarchy.IterVars() {
		varCount++
	}
	fmt.Fprintf(out, "  scopes:   %d\n", scopeCount)
	fmt.Fprintf(out, "  vars:     %d\n", varCount)
	fmt.Fprintf(out, "  unique signals: %d\n", len(w.hierarchy.GetUniqueSignalsVars()))
	fmt.Fprintf(out, "  hierarchy bytes (est.): %d\n", w.hierarchy.SizeInMemory())

	for _, handle := range w.store.Handles() {
		tsStats, valStats, err := w.store.ColumnStats(handle)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "  signal %d: ts=%s %.1f%% saved, val=%s %.1f%% saved\n",
			handle, tsStats.Algorithm, tsStats.SpaceSavings(), valStats.Algorithm, valStats.SpaceSavings())
	}
}
