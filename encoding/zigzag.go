package encoding

// EncodeZigZag16 maps a signed 16-bit integer to an unsigned 16-bit
// integer such that small-magnitude values, positive or negative, map to
// small unsigned values: 0, -1, 1, -2, 2, ... -> 0, 1, 2, 3, 4, ...
func EncodeZigZag16(x int16) uint16 {
	return uint16((x << 1) ^ (x >> 15)) //nolint:gosec
}

// DecodeZigZag16 reverses EncodeZigZag16.
func DecodeZigZag16(u uint16) int16 {
	return int16(u>>1) ^ -int16(u&1) //nolint:gosec
}
