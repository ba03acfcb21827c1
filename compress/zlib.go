package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/speedgraph/psp/errs"
)

// ZlibCodec is the only Codec ever selected by blob.BlobCodec for the
// public wire format: a single-shot RFC 1950 zlib stream at the default
// compression level, matching Java's Deflater.DEFAULT_COMPRESSION in the
// original PSP converter. It is backed by klauspost/compress/zlib, which
// is API-compatible with the standard library's compress/zlib but faster.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress deflates data into a zlib stream.
//
// The underlying zlib.Writer is closed deterministically on every exit
// path, mirroring the original converter's try/finally Deflater.end()
// cleanup.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(data); err != nil {
		zw.Close() //nolint:errcheck
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream previously produced by Compress.
//
// Any inflate failure (corrupt stream, truncated footer) is reported as
// errs.ErrInflate.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInflate, err)
	}
	defer zr.Close() //nolint:errcheck

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInflate, err)
	}

	return out, nil
}
