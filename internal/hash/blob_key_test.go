package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlobKey_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x51, 0x57}
	require.Equal(t, BlobKey(data), BlobKey(append([]byte{}, data...)))
}

func TestBlobKey_DiffersOnDifferentInput(t *testing.T) {
	a := BlobKey([]byte{0x01, 0x51, 0x57})
	b := BlobKey([]byte{0x01, 0x52, 0x57})
	require.NotEqual(t, a, b)
}

func TestBlobKey_Empty(t *testing.T) {
	require.NotPanics(t, func() {
		BlobKey(nil)
	})
}
