package png

import "testing"

func TestDecodeBKGDGrayscale(t *testing.T) {
	h := IHDR{ColorType: ColorGrayscale}
	bg, err := decodeBKGD([]byte{0x01, 0x02}, h)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	gb, ok := bg.(GrayBackground)
	if !ok || gb.Gray != 0x0102 {
		t.Fatalf("bg = %+v, want GrayBackground{0x0102}", bg)
	}
}

func TestDecodeBKGDIndexed(t *testing.T) {
	h := IHDR{ColorType: ColorIndexed}
	bg, err := decodeBKGD([]byte{7}, h)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	ib, ok := bg.(IndexedBackground)
	if !ok || ib.Index != 7 {
		t.Fatalf("bg = %+v, want IndexedBackground{7}", bg)
	}
}

func TestDecodeBKGDTruecolor(t *testing.T) {
	h := IHDR{ColorType: ColorTruecolorAlpha}
	bg, err := decodeBKGD([]byte{0, 1, 0, 2, 0, 3}, h)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	tb, ok := bg.(TruecolorBackground)
	if !ok || tb.R != 1 || tb.G != 2 || tb.B != 3 {
		t.Fatalf("bg = %+v, want TruecolorBackground{1,2,3}", bg)
	}
}

func TestDecodeBKGDWrongLength(t *testing.T) {
	h := IHDR{ColorType: ColorGrayscale}
	_, err := decodeBKGD([]byte{1}, h)
	if asPNGError(err) == nil {
		t.Fatalf("expected an error, got %v", err)
	}
}
