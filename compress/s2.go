package compress

import "github.com/klauspost/compress/s2"

// S2Codec is an alternative backend never selected by BlobCodec's
// default; callers can select it via blob.WithCompressionCodec. S2 is
// klauspost's faster, block-compatible variant of Snappy.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data using S2 block compression.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, s2.MaxEncodedLen(len(data)))

	return s2.Encode(dst, data), nil
}

// Decompress decompresses S2 block-compressed data.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dLen, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, dLen)

	return s2.Decode(dst, data)
}
