// Package blob provides the core encode/decode API for Premium
// Speed-Profile (PSP) blobs.
//
// A PSP blob carries two mandatory mean speeds (working-day, weekend-day)
// for a single directed road segment, plus optional per-day 24-hour speed
// profiles at a shared temporal resolution. BlobCodec is the orchestrator:
// it composes the encoding package's FlexFloat10/ZigZag16/VarInt16 layers
// and the section package's Header with a pluggable compress.Codec to
// produce and parse the full wire format.
//
// # Encoding
//
//	codec := blob.NewBlobCodec()
//	data := blob.NewBlobDataFromArrays(81, 87, dayToSpeeds, 240)
//	encoded, err := codec.Encode(data)
//
// # Decoding
//
//	decoded, err := codec.Decode(encoded)
//	speeds, ok := decoded.DaySpeedsAsSlice(int(format.Monday))
//
// A blob with no daily profiles is exactly 3 bytes: version,
// weekDaySpeed, weekendSpeed.
//
// # Repeated decoding
//
// CachingDecoder wraps a BlobCodec with a content-hash keyed memoization
// cache for callers that decode the same stored bytes repeatedly. It is
// not part of the wire format.
//
// # Thread safety
//
// BlobCodec is stateless and safe for concurrent use. CachingDecoder
// guards its cache with a mutex. SetMeanSpeeds mutates its buffer
// argument in place and is therefore not safe to call concurrently with
// another reader of the same bytes.
package blob
