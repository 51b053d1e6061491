// Package gwave decodes the G-format VHDL-simulator waveform dump: a
// sectioned binary stream of a string dictionary, a VHDL type graph, a
// design hierarchy, and delta-compressed per-signal value timelines. Read
// and ReadFromBytes return a Waveform exposing the decoded hierarchy and
// random access to any signal's value trajectory; IsGFormat offers a
// non-destructive format probe.
//
// The decoder is a single-threaded streaming pass with no suspension
// points (spec.md §5): strings, types, well-known-type annotations, and the
// hierarchy are decoded once each before the signal pass begins, then every
// SNP/CYC/DIR section is driven into a wavestore.Sink until TAI closes the
// stream.
package gwave
