package png

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
)

// wireChunk builds one length-framed, CRC-protected chunk record ready to
// append to a byte stream, mirroring what readChunk (chunk.go) expects to
// parse back out.
func wireChunk(tagStr string, payload []byte) []byte {
	var buf bytes.Buffer
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))
	buf.Write(length[:])
	buf.WriteString(tagStr)
	buf.Write(payload)

	sum := crc32.NewIEEE()
	sum.Write([]byte(tagStr))
	sum.Write(payload)
	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], sum.Sum32())
	buf.Write(crc[:])
	return buf.Bytes()
}

// pngStream prepends the 8-byte signature to a sequence of wire-encoded
// chunks.
func pngStream(chunks ...[]byte) []byte {
	var buf bytes.Buffer
	buf.Write(signature[:])
	for _, c := range chunks {
		buf.Write(c)
	}
	return buf.Bytes()
}

// mustZlib compresses data with the same zlib format inflateIDAT (idat.go)
// decompresses.
func mustZlib(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func be32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// ihdrPayload builds a 13-byte IHDR payload.
func ihdrPayload(width, height uint32, depth uint8, colorType ColorType, interlace Interlace) []byte {
	p := make([]byte, 13)
	be32(p[0:4], width)
	be32(p[4:8], height)
	p[8] = depth
	p[9] = byte(colorType)
	p[10] = 0 // compression
	p[11] = 0 // filter
	p[12] = byte(interlace)
	return p
}

// asPNGError returns err as *Error, or nil if err is not an *Error.
func asPNGError(err error) *Error {
	pe, ok := err.(*Error)
	if !ok {
		return nil
	}
	return pe
}
