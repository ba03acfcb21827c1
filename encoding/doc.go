// Package encoding implements the three leaf codecs of the psp binary
// pipeline: FlexFloat10 (10-bit value-dependent speed quantization),
// ZigZag16 (signed/unsigned bijection), and VarInt16 (base-128
// variable-length integers).
//
// Each codec is total, stateless, and allocation-free; BlobCodec in the
// blob package composes them into the full encode/decode pipeline.
package encoding
