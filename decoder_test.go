package png

import (
	"bytes"
	"testing"
)

func TestDecodeSignatureMismatch(t *testing.T) {
	bad := bytes.Repeat([]byte{0x00}, 8)
	_, err := Decode(bytes.NewReader(bad))
	pe := asPNGError(err)
	if pe == nil {
		t.Fatalf("expected *Error, got %v", err)
	}
	if pe.Kind != KindNotPNG {
		t.Fatalf("Kind = %v, want NotPNG", pe.Kind)
	}
}

func TestDecodeMinimalRGBA(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorTruecolorAlpha, InterlaceNone))
	skip := wireChunk("bLOB", []byte{0xDE, 0xAD}) // unrecognized ancillary: must not abort

	raw := []byte{filterNone, 10, 20, 30, 255}
	idat := wireChunk("IDAT", mustZlib(raw))
	iend := wireChunk("IEND", nil)

	stream := pngStream(ihdr, skip, idat, iend)

	img, err := Decode(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if img.Width != 1 || img.Height != 1 {
		t.Fatalf("Info = %+v, want 1x1", img.Info)
	}
	rgba, ok := img.Pixels.(*RGBAImage)
	if !ok {
		t.Fatalf("Pixels is %T, want *RGBAImage", img.Pixels)
	}
	want := RGBA32{R: 10, G: 20, B: 30, A: 255}
	if rgba.Pix[0] != want {
		t.Fatalf("Pix[0] = %+v, want %+v", rgba.Pix[0], want)
	}
}

func TestDecodeGrayscale2x2SubFilter(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(2, 2, 8, ColorGrayscale, InterlaceNone))
	raw := []byte{
		filterSub, 5, 3,
		filterSub, 2, 4,
	}
	idat := wireChunk("IDAT", mustZlib(raw))
	iend := wireChunk("IEND", nil)

	img, err := Decode(bytes.NewReader(pngStream(ihdr, idat, iend)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	gray, ok := img.Pixels.(*GrayImage)
	if !ok {
		t.Fatalf("Pixels is %T, want *GrayImage", img.Pixels)
	}
	want := []uint8{5, 8, 2, 6}
	for i := range want {
		if gray.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", gray.Pix, want)
		}
	}
}

func TestDecodeUnknownCriticalChunkAborts(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorGrayscale, InterlaceNone))
	unknown := wireChunk("BLOB", []byte{1, 2, 3})

	_, err := Decode(bytes.NewReader(pngStream(ihdr, unknown)))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData for an unknown critical chunk, got %v", err)
	}
}

func TestDecodeMalformedAncillaryChunkIsSkipped(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorGrayscale, InterlaceNone))
	badGama := wireChunk("gAMA", []byte{1, 2, 3}) // wrong length: should be skipped, not fatal

	raw := []byte{filterNone, 0x7F}
	idat := wireChunk("IDAT", mustZlib(raw))
	iend := wireChunk("IEND", nil)

	img, err := Decode(bytes.NewReader(pngStream(ihdr, badGama, idat, iend)))
	if err != nil {
		t.Fatalf("a malformed ancillary chunk should not abort decoding: %+v", err)
	}
	if img.Gamma != nil {
		t.Fatalf("Gamma = %v, want nil (payload was malformed)", *img.Gamma)
	}
}

func TestDecodeDuplicatePLTEAborts(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorIndexed, InterlaceNone))
	plte := wireChunk("PLTE", []byte{0, 0, 0, 255, 255, 255})

	_, err := Decode(bytes.NewReader(pngStream(ihdr, plte, plte)))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData for a duplicate PLTE chunk, got %v", err)
	}
}

func TestDecodePLTEAfterIDATAborts(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorIndexed, InterlaceNone))
	raw := []byte{filterNone, 0}
	idat := wireChunk("IDAT", mustZlib(raw))
	plte := wireChunk("PLTE", []byte{0, 0, 0})

	_, err := Decode(bytes.NewReader(pngStream(ihdr, idat, plte)))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData for PLTE after IDAT, got %v", err)
	}
}

func TestDecodeBKGDBeforePLTEAborts(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorIndexed, InterlaceNone))
	bkgd := wireChunk("bKGD", []byte{0})
	plte := wireChunk("PLTE", []byte{0, 0, 0})

	_, err := Decode(bytes.NewReader(pngStream(ihdr, bkgd, plte)))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData for bKGD before PLTE, got %v", err)
	}
}

func TestDecodeMissingIDATAborts(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(1, 1, 8, ColorGrayscale, InterlaceNone))
	iend := wireChunk("IEND", nil)

	_, err := Decode(bytes.NewReader(pngStream(ihdr, iend)))
	pe := asPNGError(err)
	if pe == nil || pe.Kind != KindInvalidData {
		t.Fatalf("expected InvalidData when no IDAT chunk is present, got %v", err)
	}
}

func TestDecodeIndexedWithPalette(t *testing.T) {
	ihdr := wireChunk("IHDR", ihdrPayload(2, 1, 8, ColorIndexed, InterlaceNone))
	plte := wireChunk("PLTE", []byte{
		0, 0, 0,
		255, 0, 0,
	})
	raw := []byte{filterNone, 0, 1}
	idat := wireChunk("IDAT", mustZlib(raw))
	iend := wireChunk("IEND", nil)

	img, err := Decode(bytes.NewReader(pngStream(ihdr, plte, idat, iend)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	idx, ok := img.Pixels.(*IndexedImage)
	if !ok {
		t.Fatalf("Pixels is %T, want *IndexedImage", img.Pixels)
	}
	if idx.Pix[0] != 0 || idx.Pix[1] != 1 {
		t.Fatalf("Pix = %v, want [0 1]", idx.Pix)
	}
	if len(idx.Palette.Entries) != 2 {
		t.Fatalf("Palette has %d entries, want 2", len(idx.Palette.Entries))
	}
}
