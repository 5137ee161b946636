package png

// Adam7 pass geometry constants, spec.md section 4.7.
var (
	adam7StartX = [7]int{0, 4, 0, 2, 0, 1, 0}
	adam7StartY = [7]int{0, 0, 4, 0, 2, 0, 1}
	adam7StepX  = [7]int{8, 8, 4, 4, 2, 2, 1}
	adam7StepY  = [7]int{8, 8, 8, 4, 4, 2, 2}
	adam7BlockW = [7]int{8, 4, 4, 2, 2, 1, 1}
	adam7BlockH = [7]int{8, 8, 4, 4, 2, 2, 1}
)

// adam7PassDims returns the sub-image width and height of pass (0..6) for
// a full image of size width x height, per spec.md section 4.7's per-pass
// dimension formulas. A pass with zero width or height is skipped by the
// caller.
func adam7PassDims(width, height, pass int) (pw, ph int) {
	switch pass {
	case 0:
		return (width + 7) / 8, (height + 7) / 8
	case 1:
		return (width + 3) / 8, (height + 7) / 8
	case 2:
		return (width + 3) / 4, (height + 3) / 8
	case 3:
		return (width + 1) / 4, (height + 3) / 4
	case 4:
		return (width + 1) / 2, (height + 1) / 4
	case 5:
		return width / 2, (height + 1) / 2
	case 6:
		return width, height / 2
	default:
		return 0, 0
	}
}

// adam7ExpectedLength is the sum, across all seven passes, of
// pass_height*(1+pass_line_stride) — the exact decompressed byte length
// an Adam7-interlaced IDAT stream must have (spec.md section 4.4).
func adam7ExpectedLength(h IHDR) int {
	width, height := int(h.Width), int(h.Height)
	total := 0
	for pass := 0; pass < 7; pass++ {
		pw, ph := adam7PassDims(width, height, pass)
		if pw == 0 || ph == 0 {
			continue
		}
		stride := h.lineStrideFor(uint32(pw))
		total += ph * (1 + stride)
	}
	return total
}

// unpackAdam7 drives the filter engine and pixel unpacker across all
// seven Adam7 passes, block-filling each decoded sample into every
// destination pixel it represents for that pass (spec.md section 4.7).
// Each pass gets its own freshly-initialized filterEngine, so the
// inter-pass boundary resets "previous row" to zero as required.
func unpackAdam7(h IHDR, store PixelBuffer, inflated []byte) error {
	channels := h.Channels()
	width, height := int(h.Width), int(h.Height)

	pos := 0
	for pass := 0; pass < 7; pass++ {
		pw, ph := adam7PassDims(width, height, pass)
		if pw == 0 || ph == 0 {
			continue
		}
		stride := h.lineStrideFor(uint32(pw))
		engine := newFilterEngine(stride, h.PixelStride())

		startX, startY := adam7StartX[pass], adam7StartY[pass]
		stepX, stepY := adam7StepX[pass], adam7StepY[pass]
		blockW, blockH := adam7BlockW[pass], adam7BlockH[pass]

		for py := 0; py < ph; py++ {
			if pos >= len(inflated) {
				return invalidData("adam7", "truncated scanline data in pass %d row %d: missing filter byte", pass, py)
			}
			filterType := inflated[pos]
			pos++
			if pos+stride > len(inflated) {
				return invalidData("adam7", "truncated scanline data in pass %d row %d", pass, py)
			}
			filtered := inflated[pos : pos+stride]
			pos += stride

			row, err := engine.invertRow(filterType, filtered)
			if err != nil {
				return err
			}

			for px := 0; px < pw; px++ {
				// px is this pass row's pixel_index: bit position for
				// sub-byte depths comes from px, not from the
				// destination x this sample eventually fans out to.
				samples := readSamples(row, h.BitDepth, channels, px)

				destY0 := startY + py*stepY
				destX0 := startX + px*stepX
				for dy := 0; dy < blockH; dy++ {
					y := destY0 + dy
					if y >= height {
						break
					}
					for dx := 0; dx < blockW; dx++ {
						x := destX0 + dx
						if x >= width {
							break
						}
						if err := setPixel(store, x, y, samples[:channels]); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	if pos != len(inflated) {
		return invalidData("adam7", "decompressed stream has %d trailing bytes after the last pass", len(inflated)-pos)
	}
	return nil
}
