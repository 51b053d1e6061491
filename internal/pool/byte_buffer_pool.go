// Package pool provides pooled, growable byte buffers used by gwave's
// decoders and by the reference wave-store encoder to avoid per-call
// allocation on hot parsing paths.
package pool

import "sync"

// Default buffer sizes for the two pools kept by this package: a small pool
// for section-decode scratch space (string table entries, varint scratch),
// and a larger pool for per-signal sample columns accumulated by the
// reference wave-store encoder.
const (
	ScratchBufferDefaultSize = 1024 * 4    // 4KiB
	ScratchBufferMaxThresh   = 1024 * 64   // 64KiB
	ColumnBufferDefaultSize  = 1024 * 64   // 64KiB
	ColumnBufferMaxThresh    = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice wrapper sized for repeated reuse via a
// ByteBufferPool instead of per-call allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.B = append(bb.B, b)
	return nil
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// reallocation on the next append. Small buffers grow by a fixed step;
// larger ones grow by 25% of their current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchBufferDefaultSize
	if cap(bb.B) > 4*ScratchBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an optional size cap so
// an unusually large buffer isn't retained indefinitely.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and are
// discarded (not pooled) once they grow past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool, allocating one if empty.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it instead if it
// grew beyond the pool's max threshold.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThresh)
	columnPool  = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThresh)
)

// GetScratchBuffer retrieves a buffer from the default scratch-decode pool.
func GetScratchBuffer() *ByteBuffer { return scratchPool.Get() }

// PutScratchBuffer returns a buffer to the default scratch-decode pool.
func PutScratchBuffer(bb *ByteBuffer) { scratchPool.Put(bb) }

// GetColumnBuffer retrieves a buffer from the wave-store column pool.
func GetColumnBuffer() *ByteBuffer { return columnPool.Get() }

// PutColumnBuffer returns a buffer to the wave-store column pool.
func PutColumnBuffer(bb *ByteBuffer) { columnPool.Put(bb) }
