package png

import (
	"encoding/binary"
	"io"
)

// tag is a chunk's 4-byte ASCII type, e.g. "IHDR". Bit 5 (0x20) of the
// first byte is the criticality bit: clear means critical.
type tag [4]byte

func (t tag) String() string { return string(t[:]) }

// magic is the big-endian 32-bit dispatch value spec.md section 4.1 asks
// the registry to switch on.
func (t tag) magic() uint32 { return binary.BigEndian.Uint32(t[:]) }

// critical reports whether an unrecognized chunk of this type must abort
// decoding (bit 5 of the first byte clear) or may be silently skipped.
func (t tag) critical() bool { return t[0]&0x20 == 0 }

func mustTag(s string) tag {
	if len(s) != 4 {
		panic("png: chunk tag must be 4 bytes: " + s)
	}
	var t tag
	copy(t[:], s)
	return t
}

// rawChunk is one length-framed, CRC-protected record straight off the
// wire: the type tag and its payload, with the CRC already verified.
type rawChunk struct {
	Type    tag
	Payload []byte
}

// readChunk reads one chunk per spec.md section 4.1: a 4-byte big-endian
// length, the 4-byte type, length payload bytes, and a 4-byte big-endian
// CRC computed over type‖payload. A CRC mismatch is InvalidData.
func readChunk(r io.Reader) (rawChunk, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return rawChunk{}, wrapInvalidData("readChunk", err)
	}
	length := binary.BigEndian.Uint32(head[:4])
	var typ tag
	copy(typ[:], head[4:8])

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return rawChunk{}, wrapInvalidData("readChunk", err)
		}
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return rawChunk{}, wrapInvalidData("readChunk", err)
	}
	wantCRC := binary.BigEndian.Uint32(crcBuf[:])
	gotCRC := chunkCRC(typ, payload)
	if gotCRC != wantCRC {
		return rawChunk{}, invalidData("readChunk", "chunk %q: CRC mismatch: got %08x want %08x", typ, gotCRC, wantCRC)
	}
	return rawChunk{Type: typ, Payload: payload}, nil
}
