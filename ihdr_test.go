package png

import "testing"

func TestDecodeIHDRValid(t *testing.T) {
	p := ihdrPayload(4, 3, 8, ColorTruecolorAlpha, InterlaceNone)
	h, err := decodeIHDR(p)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if h.Width != 4 || h.Height != 3 || h.BitDepth != 8 || h.ColorType != ColorTruecolorAlpha {
		t.Fatalf("unexpected IHDR: %+v", h)
	}
	if h.Channels() != 4 {
		t.Fatalf("Channels() = %d, want 4", h.Channels())
	}
	if h.PixelStride() != 4 {
		t.Fatalf("PixelStride() = %d, want 4", h.PixelStride())
	}
	if h.LineStride() != 16 {
		t.Fatalf("LineStride() = %d, want 16", h.LineStride())
	}
}

func TestDecodeIHDRWrongLength(t *testing.T) {
	_, err := decodeIHDR(make([]byte, 12))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData, got %v", err)
	}
}

func TestDecodeIHDRZeroDimension(t *testing.T) {
	p := ihdrPayload(0, 10, 8, ColorGrayscale, InterlaceNone)
	_, err := decodeIHDR(p)
	if asPNGError(err) == nil {
		t.Fatalf("expected an error for zero width, got %v", err)
	}
}

func TestDecodeIHDRIllegalBitDepth(t *testing.T) {
	// Truecolor only allows bit depth 8 or 16.
	p := ihdrPayload(1, 1, 4, ColorTruecolor, InterlaceNone)
	_, err := decodeIHDR(p)
	if asPNGError(err) == nil {
		t.Fatalf("expected an error for bit depth 4 on a truecolor image, got %v", err)
	}
}

func TestDecodeIHDRIllegalColorType(t *testing.T) {
	p := ihdrPayload(1, 1, 8, ColorType(5), InterlaceNone)
	_, err := decodeIHDR(p)
	if asPNGError(err) == nil {
		t.Fatalf("expected an error for illegal color type, got %v", err)
	}
}

func TestIHDRLineStrideSubByte(t *testing.T) {
	// 5 pixels at bit depth 1, grayscale: ceil(5/8)=1 byte per row.
	h := IHDR{Width: 5, Height: 1, BitDepth: 1, ColorType: ColorGrayscale}
	if got := h.LineStride(); got != 1 {
		t.Fatalf("LineStride() = %d, want 1", got)
	}
	if got := h.PixelStride(); got != 1 {
		t.Fatalf("PixelStride() = %d, want 1 (clamped)", got)
	}
}
