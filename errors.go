package png

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a decode failed, per the error taxonomy in the spec:
// every failure is fatal for the current image and unwinds the whole decode.
type Kind int

const (
	// KindInvalidData covers CRC failure, malformed chunks, illegal IHDR
	// fields, illegal filter bytes, IDAT length mismatches, zlib decode
	// failures, and cardinality/ordering violations.
	KindInvalidData Kind = iota
	// KindNotPNG means the 8-byte signature did not match.
	KindNotPNG
	// KindUnsupported means the input is well-formed PNG but uses a
	// combination this decoder does not implement (e.g. an unhandled
	// pixel destination variant).
	KindUnsupported
	// KindOutOfMemory means an allocation was refused, including a
	// configured MaxPixels bound being exceeded.
	KindOutOfMemory
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid data"
	case KindNotPNG:
		return "not a PNG image"
	case KindUnsupported:
		return "unsupported"
	case KindOutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by this package. Op names the
// component that failed (e.g. "readChunk", "ihdr", "adam7"); Err is the
// underlying cause, wrapped with a stack trace via pkg/errors.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("png: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("png: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(cause)}
}

func invalidData(op string, format string, args ...interface{}) *Error {
	return newError(KindInvalidData, op, fmt.Errorf(format, args...))
}

func notPNG(op string, format string, args ...interface{}) *Error {
	return newError(KindNotPNG, op, fmt.Errorf(format, args...))
}

func unsupported(op string, format string, args ...interface{}) *Error {
	return newError(KindUnsupported, op, fmt.Errorf(format, args...))
}

func outOfMemory(op string, format string, args ...interface{}) *Error {
	return newError(KindOutOfMemory, op, fmt.Errorf(format, args...))
}

func wrapInvalidData(op string, err error) *Error {
	return newError(KindInvalidData, op, err)
}
