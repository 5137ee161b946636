package png

// RGBA32 is one 8-bit-per-channel RGBA pixel, and also the element type of
// a decoded Palette entry (alpha defaults to 0xFF for palette entries,
// spec.md section 3).
type RGBA32 struct{ R, G, B, A uint8 }

// RGBA64 is one 16-bit-per-channel RGBA pixel.
type RGBA64 struct{ R, G, B, A uint16 }

// RGB24 is one 8-bit-per-channel RGB pixel (no alpha).
type RGB24 struct{ R, G, B uint8 }

// RGB48 is one 16-bit-per-channel RGB pixel (no alpha).
type RGB48 struct{ R, G, B uint16 }

// GrayAlpha8 is one 8-bit grayscale+alpha pixel.
type GrayAlpha8 struct{ Y, A uint8 }

// GrayAlpha16 is one 16-bit grayscale+alpha pixel.
type GrayAlpha16 struct{ Y, A uint16 }

// Palette is the decoded PLTE table: up to 256 RGBA32 entries, alpha
// defaulted to opaque.
type Palette struct {
	Entries []RGBA32
}

// PixelKind discriminates the closed set of pixel store variants spec.md
// section 3 defines, one per (colour type, bit depth) combination that
// actually occurs.
type PixelKind uint8

const (
	KindGray1 PixelKind = iota
	KindGray2
	KindGray4
	KindGray8
	KindGray16
	KindGrayAlpha8
	KindGrayAlpha16
	KindRGB24
	KindRGB48
	KindRGBA32
	KindRGBA64
	KindIndexed1
	KindIndexed2
	KindIndexed4
	KindIndexed8
)

// PixelBuffer is the sealed tagged-variant pixel store spec.md section 9
// calls for: a closed set of concrete, typed buffers (the unexported
// pixelBuffer method keeps other packages from adding variants). Kind
// reports which variant a value is; setPixel dispatches with a type switch
// on the concrete type.
type PixelBuffer interface {
	Width() int
	Height() int
	Kind() PixelKind

	pixelBuffer()
}

// GrayImage holds grayscale samples at bit depth 1, 2, 4 or 8, one
// unpacked byte per pixel (sub-byte samples are promoted to their own
// byte, range 0..2^Depth-1) so that len(Pix) == Width*Height always holds.
type GrayImage struct {
	W, H  int
	Depth uint8 // 1, 2, 4 or 8
	Pix   []uint8
}

func (g *GrayImage) Width() int  { return g.W }
func (g *GrayImage) Height() int { return g.H }
func (g *GrayImage) Kind() PixelKind {
	switch g.Depth {
	case 1:
		return KindGray1
	case 2:
		return KindGray2
	case 4:
		return KindGray4
	default:
		return KindGray8
	}
}
func (*GrayImage) pixelBuffer() {}

// Gray16Image holds 16-bit grayscale samples.
type Gray16Image struct {
	W, H int
	Pix  []uint16
}

func (g *Gray16Image) Width() int      { return g.W }
func (g *Gray16Image) Height() int     { return g.H }
func (g *Gray16Image) Kind() PixelKind { return KindGray16 }
func (*Gray16Image) pixelBuffer()      {}

// GrayAlphaImage holds 8-bit grayscale+alpha pixels.
type GrayAlphaImage struct {
	W, H int
	Pix  []GrayAlpha8
}

func (g *GrayAlphaImage) Width() int      { return g.W }
func (g *GrayAlphaImage) Height() int     { return g.H }
func (g *GrayAlphaImage) Kind() PixelKind { return KindGrayAlpha8 }
func (*GrayAlphaImage) pixelBuffer()      {}

// GrayAlpha16Image holds 16-bit grayscale+alpha pixels.
type GrayAlpha16Image struct {
	W, H int
	Pix  []GrayAlpha16
}

func (g *GrayAlpha16Image) Width() int      { return g.W }
func (g *GrayAlpha16Image) Height() int     { return g.H }
func (g *GrayAlpha16Image) Kind() PixelKind { return KindGrayAlpha16 }
func (*GrayAlpha16Image) pixelBuffer()      {}

// RGBImage holds 8-bit-per-channel truecolor pixels.
type RGBImage struct {
	W, H int
	Pix  []RGB24
}

func (g *RGBImage) Width() int      { return g.W }
func (g *RGBImage) Height() int     { return g.H }
func (g *RGBImage) Kind() PixelKind { return KindRGB24 }
func (*RGBImage) pixelBuffer()      {}

// RGB48Image holds 16-bit-per-channel truecolor pixels.
type RGB48Image struct {
	W, H int
	Pix  []RGB48
}

func (g *RGB48Image) Width() int      { return g.W }
func (g *RGB48Image) Height() int     { return g.H }
func (g *RGB48Image) Kind() PixelKind { return KindRGB48 }
func (*RGB48Image) pixelBuffer()      {}

// RGBAImage holds 8-bit-per-channel truecolor+alpha pixels.
type RGBAImage struct {
	W, H int
	Pix  []RGBA32
}

func (g *RGBAImage) Width() int      { return g.W }
func (g *RGBAImage) Height() int     { return g.H }
func (g *RGBAImage) Kind() PixelKind { return KindRGBA32 }
func (*RGBAImage) pixelBuffer()      {}

// RGBA64Image holds 16-bit-per-channel truecolor+alpha pixels.
type RGBA64Image struct {
	W, H int
	Pix  []RGBA64
}

func (g *RGBA64Image) Width() int      { return g.W }
func (g *RGBA64Image) Height() int     { return g.H }
func (g *RGBA64Image) Kind() PixelKind { return KindRGBA64 }
func (*RGBA64Image) pixelBuffer()      {}

// IndexedImage holds palette indices at bit depth 1, 2, 4 or 8, one
// unpacked byte per pixel, plus the palette they index into.
type IndexedImage struct {
	W, H    int
	Depth   uint8 // 1, 2, 4 or 8
	Pix     []uint8
	Palette Palette
}

func (g *IndexedImage) Width() int  { return g.W }
func (g *IndexedImage) Height() int { return g.H }
func (g *IndexedImage) Kind() PixelKind {
	switch g.Depth {
	case 1:
		return KindIndexed1
	case 2:
		return KindIndexed2
	case 4:
		return KindIndexed4
	default:
		return KindIndexed8
	}
}
func (*IndexedImage) pixelBuffer() {}

// newPixelStore allocates the pixel store variant dictated by h's colour
// type and bit depth, sized exactly Width*Height pixels. pal must be
// non-nil for indexed images. The returned release func frees the
// underlying allocation; callers keep it in the decode scope's cleanup
// list and only invoke it on the failure path (spec.md section 5).
func newPixelStore(h IHDR, pal *Palette, cfg config) (PixelBuffer, func(), error) {
	total := uint64(h.Width) * uint64(h.Height)
	if cfg.maxPixels > 0 && total > cfg.maxPixels {
		return nil, nil, outOfMemory("pixel", "image %dx%d (%d pixels) exceeds the configured limit of %d pixels", h.Width, h.Height, total, cfg.maxPixels)
	}
	n := int(total)
	w, ht := int(h.Width), int(h.Height)

	switch h.ColorType {
	case ColorGrayscale:
		if h.BitDepth == 16 {
			buf, release, err := allocUint16(n)
			if err != nil {
				return nil, nil, err
			}
			return &Gray16Image{W: w, H: ht, Pix: buf}, release, nil
		}
		buf, release, err := allocBytes(cfg.allocator, n)
		if err != nil {
			return nil, nil, err
		}
		return &GrayImage{W: w, H: ht, Depth: h.BitDepth, Pix: buf}, release, nil

	case ColorGrayscaleAlpha:
		if h.BitDepth == 16 {
			buf, release, err := allocGrayAlpha16(n)
			if err != nil {
				return nil, nil, err
			}
			return &GrayAlpha16Image{W: w, H: ht, Pix: buf}, release, nil
		}
		buf, release, err := allocGrayAlpha8(n)
		if err != nil {
			return nil, nil, err
		}
		return &GrayAlphaImage{W: w, H: ht, Pix: buf}, release, nil

	case ColorTruecolor:
		if h.BitDepth == 16 {
			buf, release, err := allocRGB48(n)
			if err != nil {
				return nil, nil, err
			}
			return &RGB48Image{W: w, H: ht, Pix: buf}, release, nil
		}
		buf, release, err := allocRGB24(n)
		if err != nil {
			return nil, nil, err
		}
		return &RGBImage{W: w, H: ht, Pix: buf}, release, nil

	case ColorTruecolorAlpha:
		if h.BitDepth == 16 {
			buf, release, err := allocRGBA64(n)
			if err != nil {
				return nil, nil, err
			}
			return &RGBA64Image{W: w, H: ht, Pix: buf}, release, nil
		}
		buf, release, err := allocRGBA32(n)
		if err != nil {
			return nil, nil, err
		}
		return &RGBAImage{W: w, H: ht, Pix: buf}, release, nil

	case ColorIndexed:
		if pal == nil {
			return nil, nil, invalidData("pixel", "indexed image has no PLTE chunk")
		}
		buf, release, err := allocBytes(cfg.allocator, n)
		if err != nil {
			return nil, nil, err
		}
		return &IndexedImage{W: w, H: ht, Depth: h.BitDepth, Pix: buf, Palette: *pal}, release, nil

	default:
		return nil, nil, unsupported("pixel", "color type %d has no pixel store variant", h.ColorType)
	}
}

// allocBytes allocates n single-byte samples through the allocator.
func allocBytes(a Allocator, n int) ([]uint8, func(), error) {
	buf, release, err := a.Alloc(n)
	if err != nil {
		return nil, nil, outOfMemory("pixel", "allocating %d bytes: %v", n, err)
	}
	return buf, release, nil
}

// The typed allocXxx helpers below back 16-bit and multi-channel pixel
// store variants. Unlike allocBytes, their element type doesn't match
// Allocator's byte granularity, and reinterpreting an Allocator-returned
// []byte as a []uint16/[]RGBA64/etc. would need an unsafe pointer cast
// with no guarantee the caller's Allocator hands back suitably aligned
// memory — a risk no repo in the retrieved pack takes (none of them use
// package unsafe). These variants are therefore plain GC-backed slices:
// of the pixel store variants, only GrayImage and IndexedImage (via
// allocBytes above) are actually backed by the injected Allocator.

func allocUint16(n int) ([]uint16, func(), error) {
	return make([]uint16, n), func() {}, nil
}

func allocGrayAlpha8(n int) ([]GrayAlpha8, func(), error) {
	return make([]GrayAlpha8, n), func() {}, nil
}

func allocGrayAlpha16(n int) ([]GrayAlpha16, func(), error) {
	return make([]GrayAlpha16, n), func() {}, nil
}

func allocRGB24(n int) ([]RGB24, func(), error) {
	return make([]RGB24, n), func() {}, nil
}

func allocRGB48(n int) ([]RGB48, func(), error) {
	return make([]RGB48, n), func() {}, nil
}

func allocRGBA32(n int) ([]RGBA32, func(), error) {
	return make([]RGBA32, n), func() {}, nil
}

func allocRGBA64(n int) ([]RGBA64, func(), error) {
	return make([]RGBA64, n), func() {}, nil
}
