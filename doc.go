// Package png decodes the core of the PNG image format: the chunk stream,
// IHDR/PLTE/bKGD/gAMA metadata, the DEFLATE-decompressed scanline filter
// inversion pipeline, the Adam7 interlacer, and the pixel unpacker that
// produces a typed pixel buffer from raw scanline bytes.
//
// Encoding, colour management and ancillary chunks outside
// IHDR/PLTE/IDAT/IEND/gAMA/bKGD are out of scope; see a sibling
// format-dispatch layer for those concerns.
package png
