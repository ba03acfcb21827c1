// Package hash provides the content-hashing helper used to key the
// optional decode memoization cache in the blob package.
package hash

import "github.com/cespare/xxhash/v2"

// BlobKey computes the xxHash64 of a raw encoded PSP blob.
//
// It is used only by blob.CachingDecoder to memoize decoded BlobData by
// content; it plays no part in the wire format itself.
func BlobKey(data []byte) uint64 {
	return xxhash.Sum64(data)
}
