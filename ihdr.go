package png

import "encoding/binary"

// ColorType is the PNG colour type byte (spec.md section 3).
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorTruecolor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTruecolorAlpha ColorType = 6
)

func (c ColorType) valid() bool {
	switch c {
	case ColorGrayscale, ColorTruecolor, ColorIndexed, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		return true
	default:
		return false
	}
}

// channels is the sample count per pixel for this colour type.
func (c ColorType) channels() int {
	switch c {
	case ColorGrayscale, ColorIndexed:
		return 1
	case ColorGrayscaleAlpha:
		return 2
	case ColorTruecolor:
		return 3
	case ColorTruecolorAlpha:
		return 4
	default:
		return 0
	}
}

// Interlace is the PNG interlace method byte.
type Interlace uint8

const (
	InterlaceNone  Interlace = 0
	InterlaceAdam7 Interlace = 1
)

// IHDR is the decoded image header: geometry and colour configuration.
// It is immutable once parsed and gates the validity of the rest of the
// stream (spec.md section 3).
type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	Interlace         Interlace
}

// validBitDepth enforces the (colour type, bit depth) legality table from
// spec.md section 3.
func validBitDepth(c ColorType, depth uint8) bool {
	switch c {
	case ColorGrayscale:
		switch depth {
		case 1, 2, 4, 8, 16:
			return true
		}
	case ColorTruecolor, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		switch depth {
		case 8, 16:
			return true
		}
	case ColorIndexed:
		switch depth {
		case 1, 2, 4, 8:
			return true
		}
	}
	return false
}

// decodeIHDR parses the fixed 13-byte IHDR payload, per spec.md section 4.3.
func decodeIHDR(payload []byte) (IHDR, error) {
	if len(payload) != 13 {
		return IHDR{}, invalidData("ihdr", "payload length %d, want 13", len(payload))
	}
	h := IHDR{
		Width:             binary.BigEndian.Uint32(payload[0:4]),
		Height:            binary.BigEndian.Uint32(payload[4:8]),
		BitDepth:          payload[8],
		ColorType:         ColorType(payload[9]),
		CompressionMethod: payload[10],
		FilterMethod:      payload[11],
		Interlace:         Interlace(payload[12]),
	}
	if h.Width == 0 || h.Height == 0 {
		return IHDR{}, invalidData("ihdr", "width and height must be nonzero, got %dx%d", h.Width, h.Height)
	}
	if !h.ColorType.valid() {
		return IHDR{}, invalidData("ihdr", "illegal color type %d", h.ColorType)
	}
	if !validBitDepth(h.ColorType, h.BitDepth) {
		return IHDR{}, invalidData("ihdr", "illegal bit depth %d for color type %d", h.BitDepth, h.ColorType)
	}
	if h.CompressionMethod != 0 {
		return IHDR{}, invalidData("ihdr", "unsupported compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return IHDR{}, invalidData("ihdr", "unsupported filter method %d", h.FilterMethod)
	}
	if h.Interlace != InterlaceNone && h.Interlace != InterlaceAdam7 {
		return IHDR{}, invalidData("ihdr", "illegal interlace method %d", h.Interlace)
	}
	return h, nil
}

// Channels is the per-pixel sample count dictated by the colour type.
func (h IHDR) Channels() int { return h.ColorType.channels() }

// PixelStride is the neighbour-pixel byte distance the filter engine uses:
// max(1, bit_depth*channels/8).
func (h IHDR) PixelStride() int {
	ps := int(h.BitDepth) * h.Channels() / 8
	if ps < 1 {
		ps = 1
	}
	return ps
}

// lineStrideFor computes ceil(width*bit_depth/8)*channels for an arbitrary
// row width, used both for the full image and for each Adam7 pass.
func (h IHDR) lineStrideFor(width uint32) int {
	bitsPerRow := int(width) * int(h.BitDepth)
	bytesPerRow := (bitsPerRow + 7) / 8
	return bytesPerRow * h.Channels()
}

// LineStride is the byte length of one reconstructed, non-interlaced
// scanline (not counting the leading filter byte).
func (h IHDR) LineStride() int { return h.lineStrideFor(h.Width) }
