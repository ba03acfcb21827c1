package blob

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/speedgraph/psp/compress"
	"github.com/speedgraph/psp/encoding"
	"github.com/speedgraph/psp/errs"
	"github.com/speedgraph/psp/format"
	"github.com/speedgraph/psp/internal/pool"
	"github.com/speedgraph/psp/section"
)

// meansOnlyBlobSize is the size, in bytes, of a blob that carries no
// daily profiles: version + weekDaySpeed + weekendSpeed.
const meansOnlyBlobSize = 3

// Option configures a BlobCodec.
type Option func(*BlobCodec)

// WithCompressionCodec overrides the codec used to compress and
// decompress the profile payload. BlobCodec defaults to
// compress.NewZlibCodec(), matching the original converter's zlib
// Deflater/Inflater; this option exists so tests and benchmarking tools
// can swap it out.
func WithCompressionCodec(codec compress.Codec) Option {
	return func(c *BlobCodec) { c.codec = codec }
}

// WithCompressionDisabled bypasses compression entirely, mirroring the
// original converter's internal isZipData=false testing toggle. It must
// never be used for blobs that leave the process.
func WithCompressionDisabled() Option {
	return func(c *BlobCodec) { c.codec = compress.NewNoopCodec() }
}

// BlobCodec encodes and decodes PSP blobs. It is stateless and safe for
// concurrent use; each call to Encode or Decode is a pure transformation
// of its input.
type BlobCodec struct {
	codec compress.Codec
}

// NewBlobCodec creates a BlobCodec. Without options it compresses the
// profile payload with zlib, matching the public wire format.
func NewBlobCodec(opts ...Option) *BlobCodec {
	c := &BlobCodec{codec: compress.NewZlibCodec()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HasSupportedVersion reports whether blob's version byte, read as
// unsigned, is no greater than format.Version. It does not otherwise
// validate the blob.
func (c *BlobCodec) HasSupportedVersion(blob []byte) bool {
	if len(blob) == 0 {
		return false
	}

	return blob[0] <= format.Version
}

// SetMeanSpeeds overwrites the mean-speed bytes of an already-encoded
// blob in place, leaving the rest of the blob untouched. It fails if the
// blob's version byte is unsupported.
//
// The write is not atomic; callers must not call this concurrently with
// a reader of the same buffer.
func (c *BlobCodec) SetMeanSpeeds(blob []byte, weekDaySpeed, weekendSpeed uint8) error {
	if len(blob) < meansOnlyBlobSize {
		return errs.ErrTruncatedBlob
	}

	if blob[0] > format.Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, blob[0])
	}

	blob[1] = weekDaySpeed
	blob[2] = weekendSpeed

	return nil
}

// AsEncoded returns the speed that would actually be stored for speed
// once it passes through FlexFloat10 quantization.
func (c *BlobCodec) AsEncoded(speed float64) float64 {
	return encoding.DecodeFlexFloat10(encoding.EncodeFlexFloat10(speed))
}

// MinNonZeroInput returns the smallest speed that does not round to zero
// under FlexFloat10 encoding.
func (c *BlobCodec) MinNonZeroInput() float64 { return encoding.MinNonZeroInput }

// MinNonZeroOutput returns the smallest non-zero speed FlexFloat10
// decoding can produce.
func (c *BlobCodec) MinNonZeroOutput() float64 { return encoding.MinNonZeroOutput }

// ToText renders the speed that would be stored for speed as a string,
// dropping a trailing ".0" for integral results.
func (c *BlobCodec) ToText(speed float64) string {
	encoded := c.AsEncoded(speed)
	if encoded == math.Trunc(encoded) {
		return strconv.FormatInt(int64(encoded), 10)
	}

	return strconv.FormatFloat(encoded, 'g', -1, 64)
}

// Encode serializes data into a PSP blob.
func (c *BlobCodec) Encode(data BlobData) ([]byte, error) {
	if !data.HasDailySpeeds() {
		return []byte{format.Version, data.WeekDaySpeed, data.WeekendSpeed}, nil
	}

	header, err := buildHeader(data)
	if err != nil {
		return nil, err
	}

	payload, err := c.encodeDailySpeeds(data, header)
	if err != nil {
		return nil, err
	}

	headerBytes, err := header.Encode(nil)
	if err != nil {
		return nil, err
	}

	blobBB := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(blobBB)

	blobBB.Grow(meansOnlyBlobSize + section.HeaderSize + len(payload))
	blobBB.MustWrite([]byte{format.Version, data.WeekDaySpeed, data.WeekendSpeed})
	blobBB.MustWrite(headerBytes)
	blobBB.MustWrite(payload)

	out := make([]byte, blobBB.Len())
	copy(out, blobBB.Bytes())

	return out, nil
}

// buildHeader derives the profile header from data, validating that every
// present day's bin count matches the declared time resolution.
func buildHeader(data BlobData) (section.Header, error) {
	res := data.TimeResolutionMinutes
	if res <= 0 || res > format.MinutesPerDay || format.MinutesPerDay%res != 0 {
		return section.Header{}, fmt.Errorf("%w: %d", errs.ErrInvalidResolution, res)
	}

	expectedBins := format.MinutesPerDay / res

	var bitset uint8
	for day := 0; day < format.DayCount; day++ {
		accessor, ok := data.DaySpeeds(day)
		if !ok {
			continue
		}

		if accessor.TotalBins() != expectedBins {
			return section.Header{}, fmt.Errorf("%w: day %d expects %d bins, got %d",
				errs.ErrBinCountMismatch, day, expectedBins, accessor.TotalBins())
		}

		bitset |= section.DayMask(day)
	}

	return section.Header{TimeResolutionMinutes: res, DaysBitSet: bitset}, nil
}

// encodeDailySpeeds produces payloadPlain (or its compressed form) for
// every day header marks relevant, in day order, carrying the running
// delta state prev across day boundaries.
func (c *BlobCodec) encodeDailySpeeds(data BlobData, header section.Header) ([]byte, error) {
	bb := pool.GetProfileBuffer()
	defer pool.PutProfileBuffer(bb)

	var varintBuf [3]byte
	var prev int16

	for day := 0; day < format.DayCount; day++ {
		if !header.IsRelevantDay(day) {
			continue
		}

		accessor, _ := data.DaySpeeds(day)
		for bin := 0; bin < accessor.TotalBins(); bin++ {
			speed := accessor.SpeedAt(bin)

			switch {
			case speed < 0:
				return nil, fmt.Errorf("%w: day %d bin %d: %v", errs.ErrNegativeSpeed, day, bin, speed)
			case speed > format.MaxSpeed:
				return nil, fmt.Errorf("%w: day %d bin %d: %v", errs.ErrSpeedTooLarge, day, bin, speed)
			}

			curr := int16(encoding.EncodeFlexFloat10(speed)) //nolint:gosec
			delta := curr - prev
			encoded := encoding.AppendVarInt16(varintBuf[:0], encoding.EncodeZigZag16(delta))
			bb.MustWrite(encoded)
			prev = curr
		}
	}

	compressed, err := c.codec.Compress(bb.Bytes())
	if err != nil {
		return nil, err
	}

	// A pass-through codec returns the pooled buffer itself; copy it out
	// before the deferred Put hands the buffer to another caller.
	return bytes.Clone(compressed), nil
}

// Decode parses blob into a BlobData: version, means, optional header and
// compressed profile payload, in that order.
func (c *BlobCodec) Decode(blob []byte) (BlobData, error) {
	if len(blob) < meansOnlyBlobSize {
		return BlobData{}, errs.ErrTruncatedBlob
	}

	if blob[0] > format.Version {
		return BlobData{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, blob[0])
	}

	weekDaySpeed, weekendSpeed := blob[1], blob[2]
	if len(blob) == meansOnlyBlobSize {
		return NewBlobData(weekDaySpeed, weekendSpeed), nil
	}

	header, n, err := section.DecodeHeader(blob[meansOnlyBlobSize:])
	if err != nil {
		return BlobData{}, err
	}

	dayToSpeeds, err := c.decodeDailySpeeds(blob[meansOnlyBlobSize+n:], header)
	if err != nil {
		return BlobData{}, err
	}

	return NewBlobDataFromArrays(weekDaySpeed, weekendSpeed, dayToSpeeds, header.TimeResolutionMinutes), nil
}

// decodeDailySpeeds inflates payload (if compression is enabled) and
// reconstructs per-day speed arrays, mirroring encodeDailySpeeds's
// cross-day delta state exactly.
func (c *BlobCodec) decodeDailySpeeds(payload []byte, header section.Header) ([][]float64, error) {
	plain, err := c.codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	bins := format.MinutesPerDay / header.TimeResolutionMinutes
	result := make([][]float64, format.DayCount)

	var prev int16
	offset := 0

	for day := 0; day < format.DayCount; day++ {
		if !header.IsRelevantDay(day) {
			continue
		}

		speeds := make([]float64, bins)
		for bin := 0; bin < bins; bin++ {
			zz, n, err := encoding.DecodeVarInt16(plain[offset:])
			if err != nil {
				return nil, err
			}

			offset += n
			delta := encoding.DecodeZigZag16(zz)
			curr := prev + delta
			speeds[bin] = encoding.DecodeFlexFloat10(uint16(curr)) //nolint:gosec
			prev = curr
		}

		result[day] = speeds
	}

	return result, nil
}
