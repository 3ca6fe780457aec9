// Package rsencoder computes parity symbols for systematic Reed-Solomon
// codes over small Galois fields.
//
// The encoder is designed to be lightweight for use on resource constrained
// devices: increased space is traded for reduced computation. All field
// arithmetic on the encode path is served from lookup tables built once at
// process start, and encoding itself allocates nothing.
//
// Only the parity symbols are produced. Since the code is systematic the
// message appears verbatim in the codeword, so callers arrange message and
// parity symbols however their framing requires.
package rsencoder

import "errors"

// Static maxima, chosen to bound the footprint of the precomputed tables.
const (
	// MaxSymbolSize is the largest symbol width, in bits, the table layout
	// accommodates.
	MaxSymbolSize = 5

	// MaxParitySymbols is the largest number of parity symbols a registered
	// code may append.
	MaxParitySymbols = 8

	// MaxMessageLength is the largest number of message symbols accepted by
	// a single Encode call.
	MaxMessageLength = 16
)

// Encoding failures. Encode wraps these with detail; match with errors.Is.
var (
	// ErrInvalidSymbolSize - no field tables exist for the requested symbol
	// width.
	ErrInvalidSymbolSize = errors.New("unsupported symbol size")

	// ErrUnsupportedConfiguration - the symbol width is known but no
	// generator polynomial is registered for the requested parity count.
	ErrUnsupportedConfiguration = errors.New("unsupported code configuration")

	// ErrBufferTooLarge - the message or parity count exceeds the static
	// maxima, or together they exceed the field's natural block length.
	ErrBufferTooLarge = errors.New("buffer too large")

	// ErrSymbolOutOfRange - a message symbol does not fit in the symbol
	// width.
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrBufferSize - the message or parity slice does not match the stated
	// dimensions.
	ErrBufferSize = errors.New("buffer length mismatch")
)
