package png

// Allocator is the injected memory source for the concatenated IDAT
// buffer, the inflate output buffer, and the one-byte-per-pixel stores
// (GrayImage, IndexedImage) (spec.md section 6's "allocator (injected
// memory source)"). Chunk payloads, the filter engine's row buffer and the
// 16-bit and multi-channel pixel stores are allocated with make() and do
// not go through it. Alloc
// returns the buffer, a release function to call once the buffer is no
// longer needed, and an error if the allocation could not be satisfied.
type Allocator interface {
	Alloc(n int) (buf []byte, release func(), err error)
}

// defaultAllocator is a plain make()-backed Allocator; release is a no-op
// since Go buffers are reclaimed by the garbage collector once
// unreferenced.
type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) ([]byte, func(), error) {
	return make([]byte, n), func() {}, nil
}

// config is the decoder's resolved configuration surface (spec.md section
// 6): an allocator and an optional pixel-count ceiling used to reject
// resource-exhaustion inputs before the pixel store is allocated (the
// IDAT concatenation and inflate buffers are allocated before the check).
type config struct {
	allocator Allocator
	maxPixels uint64 // 0 means unbounded
}

// Option configures a Decode call.
type Option func(*config)

// WithAllocator overrides the memory source used for scratch buffers.
func WithAllocator(a Allocator) Option {
	return func(c *config) { c.allocator = a }
}

// WithMaxPixels rejects images whose width*height exceeds n, surfacing
// KindOutOfMemory before the pixel store is allocated. n == 0 means
// unbounded, the default.
func WithMaxPixels(n uint64) Option {
	return func(c *config) { c.maxPixels = n }
}

func newConfig(opts []Option) config {
	cfg := config{allocator: defaultAllocator{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
