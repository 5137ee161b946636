package png

import "io"

var signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Info is the basic image geometry spec.md section 6 asks Decode to return
// alongside the pixel store.
type Info struct {
	Width  uint32
	Height uint32
}

// Image is the full result of a decode: the pixel store plus every
// recognized chunk's decoded record. Palette, Background and Gamma are nil
// when their chunk was absent (or, for the two ancillary ones, present but
// unparseable — see Decode's doc comment).
type Image struct {
	Info
	IHDR       IHDR
	Pixels     PixelBuffer
	Palette    *Palette
	Background Background
	Gamma      *Gamma
}

// Decode reads one PNG datastream from r and produces a typed pixel buffer,
// per spec.md sections 4 and 6. It generalizes the teacher's
// github.com/XC-Zero/simple-png ParsePng/parseBaseChunk pair into a single
// pass: read the signature, then IHDR, then walk the remaining chunks in
// stream order, handing each recognized tag to its decoder and enforcing
// the registry's cardinality and ordering rules (registry.go) as it goes,
// rather than buffering the whole chunk list and scanning it once per
// wanted type afterward.
//
// Per spec.md section 7's propagation policy, a failure in a critical
// chunk (IHDR, PLTE, IDAT, IEND, or any unrecognized chunk whose
// criticality bit is clear) aborts the whole decode. A failure to parse a
// recognized ancillary chunk's payload (gAMA, bKGD) is not fatal: the
// chunk is treated as though it had been absent and decoding continues,
// exactly as an unrecognized ancillary chunk would be skipped. Cardinality
// and ordering violations (e.g. a second gAMA, or a gAMA after IDAT) are
// structural, not payload-parse failures, and always abort.
func Decode(r io.Reader, opts ...Option) (*Image, error) {
	cfg := newConfig(opts)

	var got [8]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, notPNG("decode", "reading signature: %v", err)
	}
	if got != signature {
		return nil, notPNG("decode", "signature %x does not match the PNG magic", got)
	}

	tracker := newChunkTracker()

	first, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	if first.Type != tagIHDR {
		return nil, invalidData("decode", "first chunk is %q, want IHDR", first.Type)
	}
	tracker.observe(tagIHDR)
	h, err := decodeIHDR(first.Payload)
	if err != nil {
		return nil, err
	}

	var cleanup []func()
	defer func() {
		for _, fn := range cleanup {
			fn()
		}
	}()

	img := &Image{
		Info: Info{Width: h.Width, Height: h.Height},
		IHDR: h,
	}

	var idatParts [][]byte
	done := false

	for !done {
		c, err := readChunk(r)
		if err != nil {
			return nil, err
		}

		switch c.Type {
		case tagIHDR:
			tracker.observe(tagIHDR)
			if err := tracker.checkCardinality(tagIHDR); err != nil {
				return nil, err
			}

		case tagPLTE:
			tracker.observe(tagPLTE)
			if err := tracker.checkCardinality(tagPLTE); err != nil {
				return nil, err
			}
			if err := tracker.requireBeforeIDAT(tagPLTE); err != nil {
				return nil, err
			}
			if err := tracker.requirePLTEBeforeBKGD(); err != nil {
				return nil, err
			}
			pal, err := decodePLTE(c.Payload, h)
			if err != nil {
				return nil, err
			}
			img.Palette = &pal

		case tagBKGD:
			tracker.observe(tagBKGD)
			if err := tracker.checkCardinality(tagBKGD); err != nil {
				return nil, err
			}
			if err := tracker.requireBeforeIDAT(tagBKGD); err != nil {
				return nil, err
			}
			tracker.noteBKGD()
			if bg, err := decodeBKGD(c.Payload, h); err == nil {
				img.Background = bg
			}

		case tagGAMA:
			tracker.observe(tagGAMA)
			if err := tracker.checkCardinality(tagGAMA); err != nil {
				return nil, err
			}
			if err := tracker.requireBeforeIDAT(tagGAMA); err != nil {
				return nil, err
			}
			if g, err := decodeGAMA(c.Payload); err == nil {
				img.Gamma = &g
			}

		case tagIDAT:
			tracker.observe(tagIDAT)
			if err := tracker.beginIDAT(); err != nil {
				return nil, err
			}
			idatParts = append(idatParts, c.Payload)

		case tagIEND:
			tracker.observe(tagIEND)
			if err := tracker.checkCardinality(tagIEND); err != nil {
				return nil, err
			}
			done = true

		default:
			tracker.noteOtherChunk()
			if c.Type.critical() {
				return nil, invalidData("decode", "unknown critical chunk %q", c.Type)
			}
			// Unrecognized ancillary chunk: skip.
		}
	}

	if err := tracker.requireAtLeastOneIDAT(); err != nil {
		return nil, err
	}

	concatenated, releaseConcat, err := concatIDAT(cfg, idatParts)
	if err != nil {
		return nil, err
	}
	cleanup = append(cleanup, releaseConcat)

	inflated, releaseInflated, err := inflateIDAT(cfg, concatenated)
	if err != nil {
		return nil, err
	}
	cleanup = append(cleanup, releaseInflated)

	if want := expectedInflatedLength(h); len(inflated) != want {
		return nil, invalidData("decode", "decompressed length %d, want %d", len(inflated), want)
	}

	store, releaseStore, err := newPixelStore(h, img.Palette, cfg)
	if err != nil {
		return nil, err
	}
	cleanup = append(cleanup, releaseStore)

	if h.Interlace == InterlaceAdam7 {
		err = unpackAdam7(h, store, inflated)
	} else {
		err = unpackNonInterlaced(h, store, inflated)
	}
	if err != nil {
		return nil, err
	}

	img.Pixels = store

	// Success: the concatenated-IDAT and inflate scratch buffers are no
	// longer needed now that their bytes have been unpacked into the
	// pixel store, so release them here rather than leaving that to the
	// garbage collector. The pixel store itself transfers ownership to
	// the caller instead: releaseStore is the one cleanup entry that
	// must NOT run, so it is dropped by clearing cleanup rather than
	// invoked, after releaseConcat/releaseInflated have already run.
	releaseConcat()
	releaseInflated()
	cleanup = nil
	return img, nil
}
