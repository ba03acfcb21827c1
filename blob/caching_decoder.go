package blob

import (
	"sync"

	"github.com/speedgraph/psp/internal/hash"
)

// CachingDecoder memoizes BlobCodec.Decode results by the xxHash64 of the
// encoded bytes. It exists for services that repeatedly decode the same
// stored blob (e.g. multiple lookups against one road segment's cached
// PSP data); it is not part of the wire format and BlobCodec itself
// remains stateless.
//
// CachingDecoder is safe for concurrent use.
type CachingDecoder struct {
	codec *BlobCodec

	mu    sync.Mutex
	cache map[uint64]BlobData
}

// NewCachingDecoder wraps codec with a decode memoization cache.
func NewCachingDecoder(codec *BlobCodec) *CachingDecoder {
	return &CachingDecoder{
		codec: codec,
		cache: make(map[uint64]BlobData),
	}
}

// Decode returns the cached BlobData for blob if this exact byte sequence
// was decoded before; otherwise it decodes, caches, and returns the
// result.
func (d *CachingDecoder) Decode(blob []byte) (BlobData, error) {
	key := hash.BlobKey(blob)

	d.mu.Lock()
	cached, ok := d.cache[key]
	d.mu.Unlock()

	if ok {
		return cached, nil
	}

	data, err := d.codec.Decode(blob)
	if err != nil {
		return BlobData{}, err
	}

	d.mu.Lock()
	d.cache[key] = data
	d.mu.Unlock()

	return data, nil
}

// Invalidate removes blob's cached entry, if any, forcing the next Decode
// call for the same bytes to re-decode.
func (d *CachingDecoder) Invalidate(blob []byte) {
	key := hash.BlobKey(blob)

	d.mu.Lock()
	delete(d.cache, key)
	d.mu.Unlock()
}

// Reset clears the entire cache.
func (d *CachingDecoder) Reset() {
	d.mu.Lock()
	d.cache = make(map[uint64]BlobData)
	d.mu.Unlock()
}
