package png

// Recognized chunk tags (spec.md section 6).
var (
	tagIHDR = mustTag("IHDR")
	tagPLTE = mustTag("PLTE")
	tagIDAT = mustTag("IDAT")
	tagIEND = mustTag("IEND")
	tagGAMA = mustTag("gAMA")
	tagBKGD = mustTag("bKGD")
)

// cardinality is how many times a recognized chunk may appear, per
// spec.md section 4.2's registry.
type cardinality int

const (
	cardinalityExactlyOne cardinality = iota
	cardinalityZeroOrOne
	cardinalityOneOrMore
)

// chunkRegistry is the static {tag, cardinality} table spec.md section
// 4.2 calls for. Per-tag decoding lives in decoder.go, since each decoder
// needs different inputs (some need the IHDR for context, IDAT needs
// none), and decoder.go also picks which of chunkTracker's ordering checks
// below apply to each tag; this table is the cardinality half of the
// registry that applies uniformly.
var chunkRegistry = map[tag]cardinality{
	tagIHDR: cardinalityExactlyOne,
	tagPLTE: cardinalityZeroOrOne,
	tagIDAT: cardinalityOneOrMore,
	tagIEND: cardinalityExactlyOne,
	tagGAMA: cardinalityZeroOrOne,
	tagBKGD: cardinalityZeroOrOne,
}

// chunkTracker enforces the ordering and cardinality rules of spec.md
// section 4.2 as chunks are observed one at a time, in stream order. It
// replaces the teacher's approach of buffering every chunk up front and
// re-scanning the list once per wanted type (github.com/XC-Zero/simple-png's
// Png.ParseChunk) — that approach can't validate "PLTE before any IDAT"
// without a second pass, and its own TODO admits the ordering rules were
// never enforced at all.
type chunkTracker struct {
	counts map[tag]int

	idatSeen   bool // at least one IDAT chunk has been observed
	idatOpen   bool // currently inside an uninterrupted run of IDAT chunks
	idatClosed bool // an IDAT run was interrupted by an intervening chunk

	bkgdSeen bool // a bKGD chunk has been observed
}

func newChunkTracker() *chunkTracker {
	return &chunkTracker{counts: make(map[tag]int)}
}

// observe records one occurrence of tg and returns the running count.
func (t *chunkTracker) observe(tg tag) int {
	t.counts[tg]++
	return t.counts[tg]
}

// checkCardinality enforces the exactly-one / zero-or-one rules from
// chunkRegistry; IDAT's one-or-more rule is checked once, at end of
// stream, by requireAtLeastOneIDAT.
func (t *chunkTracker) checkCardinality(tg tag) error {
	c, recognized := chunkRegistry[tg]
	if !recognized {
		return nil
	}
	switch c {
	case cardinalityExactlyOne, cardinalityZeroOrOne:
		if n := t.counts[tg]; n > 1 {
			return invalidData("registry", "chunk %q must appear at most once, seen %d times", tg, n)
		}
	}
	return nil
}

// requireAtLeastOneIDAT enforces IDAT's one-or-more cardinality once the
// chunk stream has been fully consumed.
func (t *chunkTracker) requireAtLeastOneIDAT() error {
	if !t.idatSeen {
		return invalidData("registry", "at least one IDAT chunk is required")
	}
	return nil
}

// beginIDAT records one IDAT chunk, enforcing "IDAT chunks must be
// contiguous (no other chunk between two IDATs)".
func (t *chunkTracker) beginIDAT() error {
	if t.idatClosed {
		return invalidData("registry", "IDAT chunks must be contiguous")
	}
	t.idatSeen = true
	t.idatOpen = true
	return nil
}

// noteOtherChunk records that a non-IDAT, non-metadata chunk (ancillary
// or unknown) was seen; if an IDAT run was open, this closes it, so a
// later IDAT chunk is then rejected by beginIDAT.
func (t *chunkTracker) noteOtherChunk() {
	if t.idatOpen {
		t.idatOpen = false
		t.idatClosed = true
	}
}

// requireBeforeIDAT enforces "PLTE/bKGD/gAMA before any IDAT".
func (t *chunkTracker) requireBeforeIDAT(tg tag) error {
	if t.idatSeen {
		return invalidData("registry", "chunk %q must precede any IDAT chunk", tg)
	}
	return nil
}

// noteBKGD records that a bKGD chunk has been observed, so that a PLTE
// chunk arriving afterward is rejected by requirePLTEBeforeBKGD.
func (t *chunkTracker) noteBKGD() {
	t.bkgdSeen = true
}

// requirePLTEBeforeBKGD enforces "bKGD after PLTE": a PLTE chunk must not
// appear once a bKGD chunk has already been seen. This is independent of
// requireBeforeIDAT, which only orders each of PLTE/bKGD against IDAT,
// not against each other.
func (t *chunkTracker) requirePLTEBeforeBKGD() error {
	if t.bkgdSeen {
		return invalidData("registry", "chunk %q must precede bKGD", tagPLTE)
	}
	return nil
}
