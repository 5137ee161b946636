package png

import "encoding/binary"

// Gamma is the raw gAMA fixed-point value; the exposed exponent is
// Value() = raw/100000 (spec.md section 3).
type Gamma uint32

// Value returns the gamma exponent this chunk encodes.
func (g Gamma) Value() float64 { return float64(g) / 100000 }

// decodeGAMA parses a one-uint32 gAMA payload (spec.md section 4.3).
func decodeGAMA(payload []byte) (Gamma, error) {
	if len(payload) != 4 {
		return 0, invalidData("gama", "payload length %d, want 4", len(payload))
	}
	return Gamma(binary.BigEndian.Uint32(payload)), nil
}
