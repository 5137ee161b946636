package png

// decodePLTE parses a palette chunk: 1..256 RGB triples, padded with
// alpha=255 to become RGBA32 entries (spec.md section 3). A length not
// divisible by 3, more than 256 entries, more entries than 2^bit_depth can
// address for an indexed image, or a PLTE chunk under a colour type that
// carries no palette, are all InvalidData.
func decodePLTE(payload []byte, h IHDR) (Palette, error) {
	if len(payload)%3 != 0 {
		return Palette{}, invalidData("plte", "payload length %d not a multiple of 3", len(payload))
	}
	n := len(payload) / 3
	if n == 0 || n > 256 {
		return Palette{}, invalidData("plte", "entry count %d out of range 1..256", n)
	}
	switch h.ColorType {
	case ColorGrayscale, ColorGrayscaleAlpha:
		return Palette{}, invalidData("plte", "PLTE is not allowed for color type %d", h.ColorType)
	case ColorIndexed:
		if max := 1 << h.BitDepth; n > max {
			return Palette{}, invalidData("plte", "entry count %d exceeds 2^bit_depth=%d", n, max)
		}
	}

	entries := make([]RGBA32, n)
	for i := 0; i < n; i++ {
		entries[i] = RGBA32{
			R: payload[3*i+0],
			G: payload[3*i+1],
			B: payload[3*i+2],
			A: 0xFF,
		}
	}
	return Palette{Entries: entries}, nil
}
