package png

import (
	"bytes"
	"compress/zlib"
	"io"
)

// concatIDAT joins all IDAT payloads, in stream order, into one
// allocator-backed buffer — the logical compressed stream spec.md
// section 4.4 describes. The registry (registry.go) is responsible for
// having already rejected any chunk ordering that would make "stream
// order" ambiguous (IDATs must be contiguous).
func concatIDAT(cfg config, parts [][]byte) ([]byte, func(), error) {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	buf, release, err := cfg.allocator.Alloc(total)
	if err != nil {
		return nil, nil, outOfMemory("idat", "allocating %d concatenated IDAT bytes: %v", total, err)
	}
	n := 0
	for _, p := range parts {
		n += copy(buf[n:], p)
	}
	return buf, release, nil
}

// inflateIDAT decompresses the concatenated IDAT stream with the zlib
// reader (spec.md section 1 treats the DEFLATE/zlib decompressor as an
// external, assumed-available collaborator; compress/zlib is that
// collaborator here, the same call fumin/png's decoder.Read pipeline
// makes). The result is copied into its own allocator-backed buffer so
// it participates in the same scoped-release discipline as every other
// scratch allocation.
func inflateIDAT(cfg config, concatenated []byte) ([]byte, func(), error) {
	zr, err := zlib.NewReader(bytes.NewReader(concatenated))
	if err != nil {
		return nil, nil, invalidData("idat", "zlib header: %v", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, nil, invalidData("idat", "zlib decode: %v", err)
	}

	buf, release, allocErr := cfg.allocator.Alloc(len(out))
	if allocErr != nil {
		return nil, nil, outOfMemory("idat", "allocating %d inflated bytes: %v", len(out), allocErr)
	}
	copy(buf, out)
	return buf, release, nil
}

// expectedInflatedLength is the exact decompressed byte length the IDAT
// stream must decode to: height*(1+line_stride) for a standard image, or
// the sum across the seven Adam7 passes for an interlaced one (spec.md
// section 4.4).
func expectedInflatedLength(h IHDR) int {
	if h.Interlace == InterlaceAdam7 {
		return adam7ExpectedLength(h)
	}
	return int(h.Height) * (1 + h.LineStride())
}
