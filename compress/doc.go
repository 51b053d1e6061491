// Package compress implements the codecs wavestore can apply to an encoded
// signal column: None, Zstd, S2, and LZ4. Compression runs as a second stage
// after encoding (delta timestamps, Gorilla-encoded F64 values, raw bytes)
// and trades CPU for the size of the resulting blob.
//
// # Choosing a codec
//
//   - None: zero overhead, use when columns are already small or incompressible.
//   - Zstd: best ratio, moderate speed; good for cold/archival waveform dumps.
//   - S2: balanced speed and ratio; good default for interactive loads.
//   - LZ4: fastest decompression; good when GetSignal is called repeatedly
//     on the same handles (random access to a hot trace).
package compress
