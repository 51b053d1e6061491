// Package wavestore provides a reference implementation of the wave-store
// sink spec.md §4.9 leaves abstract: a concrete, in-memory Sink that stores
// every signal's samples column-wise (a femtosecond-timestamp column and a
// value column whose physical layout matches the signal's wire encoding),
// compresses each column with a selectable codec, and returns a Store that
// answers GetSamples/Handles/ColumnStats (the latter feeding
// Waveform.PrintBackendStatistics).
//
// Decoding the G-format input itself never depends on this package — it is
// a consumer of the decoder's output, wired up the way mebo's blob package
// wires encoder/decoder pairs around a shared column codec.
package wavestore
