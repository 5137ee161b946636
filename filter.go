package png

const (
	filterNone    = 0
	filterSub     = 1
	filterUp      = 2
	filterAverage = 3
	filterPaeth   = 4
)

// filterEngine inverts PNG's per-scanline predictive filters. It keeps
// exactly two rows of memory, addressed modulo 2*stride by a rotating
// index (spec.md section 9's sliding-window design note), so that
// "current" and "previous" swap roles each call without copying rows
// around. One filterEngine is scoped to one image (non-interlaced) or one
// Adam7 pass — a fresh engine per pass resets the previous row to zero at
// the pass boundary, per spec.md section 4.7.
type filterEngine struct {
	stride      int // line_stride: bytes per row, excluding the filter byte
	pixelStride int // ps: neighbour-pixel byte distance
	buf         []byte
	index       int
}

func newFilterEngine(stride, pixelStride int) *filterEngine {
	return &filterEngine{
		stride:      stride,
		pixelStride: pixelStride,
		buf:         make([]byte, 2*stride),
	}
}

// invertRow reconstructs one scanline in place: src holds the filtered
// bytes X[i] for this row; the returned slice holds the reconstructed
// R[i] and remains valid only until the next invertRow call (it aliases
// the engine's internal buffer). Out-of-range neighbours — i < ps, or no
// previous row yet — read as zero, which the zero-initialized buffer and
// the first call's untouched "previous" half already guarantee.
func (e *filterEngine) invertRow(filterType byte, src []byte) ([]byte, error) {
	if len(src) != e.stride {
		return nil, invalidData("filter", "scanline length %d, want %d", len(src), e.stride)
	}

	cur := e.buf[e.index : e.index+e.stride]
	prevIndex := (e.index + e.stride) % (2 * e.stride)
	prev := e.buf[prevIndex : prevIndex+e.stride]
	copy(cur, src)

	ps := e.pixelStride
	switch filterType {
	case filterNone:
		// No-op: X[i] is already R[i].
	case filterSub:
		for i := ps; i < e.stride; i++ {
			cur[i] += cur[i-ps]
		}
	case filterUp:
		for i := 0; i < e.stride; i++ {
			cur[i] += prev[i]
		}
	case filterAverage:
		for i := 0; i < e.stride; i++ {
			var left byte
			if i >= ps {
				left = cur[i-ps]
			}
			cur[i] += byte((int(left) + int(prev[i])) / 2)
		}
	case filterPaeth:
		for i := 0; i < e.stride; i++ {
			var a, c byte
			if i >= ps {
				a = cur[i-ps]
				c = prev[i-ps]
			}
			cur[i] += paethPredictor(a, prev[i], c)
		}
	default:
		return nil, invalidData("filter", "illegal filter type %d", filterType)
	}

	e.index = (e.index + e.stride) % (2 * e.stride)
	return cur, nil
}

// paethPredictor is the three-neighbour Paeth predictor from spec.md
// section 4.5: p = a+b-c widened to signed arithmetic, then whichever of
// a, b, c is closest to p wins, ties broken in favour of a, then b.
//
// See DESIGN.md's "Open question: scenario 4's Paeth tie-break" entry:
// this is the algorithm as spec.md section 4.5 literally defines it,
// which for the illustrative inputs (a=10, b=20, c=15) computes to c,
// not the scenario prose's stated "a" — the prose is internally
// inconsistent and is not followed here.
func paethPredictor(a, b, c byte) byte {
	ia, ib, ic := int(a), int(b), int(c)
	p := ia + ib - ic
	pa := absInt(p - ia)
	pb := absInt(p - ib)
	pc := absInt(p - ic)
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
