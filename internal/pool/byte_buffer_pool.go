// Package pool provides reusable byte-buffer pools for the psp codec's
// hot encode/decode path, avoiding per-call allocation for the
// payloadPlain and final blob buffers.
package pool

import "sync"

// ProfileBufferDefaultSize is the starting capacity for a pooled profile
// buffer, comfortably holding a full week at coarse-to-moderate time
// resolutions before Grow needs to reallocate.
const ProfileBufferDefaultSize = 128

// ProfileBufferMaxThreshold discards pooled buffers grown past this size,
// so a single unusually fine-grained (1-minute) profile does not bloat the
// pool for every subsequent, coarser blob.
const ProfileBufferMaxThreshold = 64 * 1024

// BlobBufferDefaultSize is the default size for the final, concatenated
// blob buffer (version + means + header + compressed payload).
const BlobBufferDefaultSize = 256

// ByteBuffer is a growable byte slice wrapper intended for pool reuse.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory
// for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+requiredBytes)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers of a given default size, discarding
// buffers that have grown past maxThreshold to bound memory retention.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
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
	profileBufferPool = NewByteBufferPool(ProfileBufferDefaultSize, ProfileBufferMaxThreshold)
	blobBufferPool    = NewByteBufferPool(BlobBufferDefaultSize, ProfileBufferMaxThreshold)
)

// GetProfileBuffer retrieves a ByteBuffer from the default profile-payload
// pool, which holds the uncompressed payloadPlain of an encode call.
func GetProfileBuffer() *ByteBuffer {
	return profileBufferPool.Get()
}

// PutProfileBuffer returns a ByteBuffer to the default profile-payload pool.
func PutProfileBuffer(bb *ByteBuffer) {
	profileBufferPool.Put(bb)
}

// GetBlobBuffer retrieves a ByteBuffer from the default final-blob pool.
func GetBlobBuffer() *ByteBuffer {
	return blobBufferPool.Get()
}

// PutBlobBuffer returns a ByteBuffer to the default final-blob pool.
func PutBlobBuffer(bb *ByteBuffer) {
	blobBufferPool.Put(bb)
}
