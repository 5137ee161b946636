package png

import "encoding/binary"

// unpackNonInterlaced walks the decompressed, filtered scanline stream of
// a standard (non-Adam7) image and writes width*height typed pixels into
// store (spec.md section 4.6).
func unpackNonInterlaced(h IHDR, store PixelBuffer, inflated []byte) error {
	stride := h.LineStride()
	engine := newFilterEngine(stride, h.PixelStride())
	channels := h.Channels()
	width := int(h.Width)

	pos := 0
	for y := 0; y < int(h.Height); y++ {
		if pos >= len(inflated) {
			return invalidData("unpack", "truncated scanline data at row %d: missing filter byte", y)
		}
		filterType := inflated[pos]
		pos++
		if pos+stride > len(inflated) {
			return invalidData("unpack", "truncated scanline data at row %d", y)
		}
		filtered := inflated[pos : pos+stride]
		pos += stride

		row, err := engine.invertRow(filterType, filtered)
		if err != nil {
			return err
		}

		// Sub-byte depths pack multiple samples per byte MSB-first; we
		// simply stop reading at width, which ignores any padding bits
		// in the row's final byte.
		for x := 0; x < width; x++ {
			samples := readSamples(row, h.BitDepth, channels, x)
			if err := setPixel(store, x, y, samples[:channels]); err != nil {
				return err
			}
		}
	}
	if pos != len(inflated) {
		return invalidData("unpack", "decompressed stream has %d trailing bytes after the last scanline", len(inflated)-pos)
	}
	return nil
}

// readSamples extracts the (up to 4) channel samples for the x-th pixel
// of a reconstructed row. Per spec.md section 4.6: 16-bit samples are
// big-endian pairs, 8-bit samples are one byte per channel, and bit
// depths below 8 (always single-channel: grayscale or indexed) are
// packed MSB-first, bit position derived from x directly (the
// non-interlaced case — Adam7 passes derive bit position from the
// pass-local sample index instead, per spec.md section 4.7).
func readSamples(row []byte, depth uint8, channels int, x int) (out [4]uint16) {
	switch depth {
	case 16:
		for c := 0; c < channels; c++ {
			out[c] = binary.BigEndian.Uint16(row[(x*channels+c)*2:])
		}
	case 8:
		for c := 0; c < channels; c++ {
			out[c] = uint16(row[x*channels+c])
		}
	default:
		out[0] = uint16(sampleBits(row, depth, x))
	}
	return out
}

// sampleBits extracts the sampleIndex-th sub-byte sample (depth 1, 2 or
// 4) from a byte-packed row: (byte >> (7 - bit)) & mask, bit advancing by
// depth per sample and resetting at each byte boundary (spec.md section
// 9).
func sampleBits(row []byte, depth uint8, sampleIndex int) uint8 {
	samplesPerByte := 8 / int(depth)
	byteIdx := sampleIndex / samplesPerByte
	posInByte := sampleIndex % samplesPerByte
	shift := 8 - int(depth)*(posInByte+1)
	mask := byte(1<<depth) - 1
	return (row[byteIdx] >> uint(shift)) & mask
}

// setPixel writes one fully-assembled sample (chans[0] is the palette
// index for indexed images) into the destination pixel (x, y) of store.
// This is the single dispatch point shared by the non-interlaced
// unpacker and the Adam7 block-fill writer, per spec.md section 9's
// sum-type dispatch design note.
func setPixel(store PixelBuffer, x, y int, chans []uint16) error {
	switch s := store.(type) {
	case *GrayImage:
		s.Pix[y*s.W+x] = uint8(chans[0])
	case *Gray16Image:
		s.Pix[y*s.W+x] = chans[0]
	case *GrayAlphaImage:
		s.Pix[y*s.W+x] = GrayAlpha8{Y: uint8(chans[0]), A: uint8(chans[1])}
	case *GrayAlpha16Image:
		s.Pix[y*s.W+x] = GrayAlpha16{Y: chans[0], A: chans[1]}
	case *RGBImage:
		s.Pix[y*s.W+x] = RGB24{R: uint8(chans[0]), G: uint8(chans[1]), B: uint8(chans[2])}
	case *RGB48Image:
		s.Pix[y*s.W+x] = RGB48{R: chans[0], G: chans[1], B: chans[2]}
	case *RGBAImage:
		s.Pix[y*s.W+x] = RGBA32{R: uint8(chans[0]), G: uint8(chans[1]), B: uint8(chans[2]), A: uint8(chans[3])}
	case *RGBA64Image:
		s.Pix[y*s.W+x] = RGBA64{R: chans[0], G: chans[1], B: chans[2], A: chans[3]}
	case *IndexedImage:
		s.Pix[y*s.W+x] = uint8(chans[0])
	default:
		return unsupported("unpack", "pixel destination variant %T", store)
	}
	return nil
}
