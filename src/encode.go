package rsencoder

import "fmt"

// Encode computes the t parity symbols of the systematic Reed-Solomon
// codeword for msg, using m bits per symbol, and writes them to
// parity[0:t]. msg must hold exactly k symbols, each smaller than 2^m, and
// parity must have room for at least t symbols.
//
// On success exactly t symbols are written and msg followed by those
// symbols is a valid codeword (a multiple of the code's generator
// polynomial). On failure the error wraps one of the Err values of this
// package and parity is left untouched - all preconditions are checked
// before anything is written.
//
// Encode is deterministic, does not allocate, and is safe for concurrent
// use; the tables it reads are fixed at process start.
func Encode(msg []byte, k, t, m int, parity []byte) error {
	if len(msg) != k {
		return fmt.Errorf("%w: message holds %d symbols, k = %d", ErrBufferSize, len(msg), k)
	}
	if len(parity) < t {
		return fmt.Errorf("%w: parity buffer holds %d symbols, t = %d", ErrBufferSize, len(parity), t)
	}

	var f, ok = fields[m]
	if !ok {
		return fmt.Errorf("%w: no field tables for %d bits per symbol", ErrInvalidSymbolSize, m)
	}

	if k > MaxMessageLength {
		return fmt.Errorf("%w: %d message symbols, maximum is %d", ErrBufferTooLarge, k, MaxMessageLength)
	}
	if t > MaxParitySymbols {
		return fmt.Errorf("%w: %d parity symbols, maximum is %d", ErrBufferTooLarge, t, MaxParitySymbols)
	}

	var c, registered = codes[configKey{m, t}]
	if !registered {
		return fmt.Errorf("%w: no generator polynomial for %d parity symbols with %d-bit symbols", ErrUnsupportedConfiguration, t, m)
	}

	if k+t > f.blockLen {
		return fmt.Errorf("%w: codeword of %d symbols exceeds block length %d", ErrBufferTooLarge, k+t, f.blockLen)
	}

	for i, s := range msg {
		if int(s) >= f.elements {
			return fmt.Errorf("%w: message symbol %d is %#x, symbols are %d bits", ErrSymbolOutOfRange, i, s, m)
		}
	}

	// Reed-Solomon operates on blocks of 2^m - 1 symbols. A shorter
	// codeword is encoded as if the message were padded with leading zero
	// symbols up to the block length, which are then dropped from the
	// transmitted codeword. The padding is never materialized; the zeros
	// just run extra steps of the register below.
	var shortened = f.blockLen - (k + t)

	// The parity register accumulates the remainder of dividing the
	// message polynomial by the generator polynomial, one symbol at a
	// time. Its length is the generator polynomial degree t.
	var reg [MaxParitySymbols]byte

	for i := 0; i < shortened+k; i++ {
		var s byte
		if i >= shortened {
			s = msg[i-shortened]
		}

		var feedback = f.Add(s, reg[0])
		var rhs = c.products[feedback]

		for j := 0; j < t-1; j++ {
			reg[j] = f.Add(reg[j+1], rhs[j])
		}
		reg[t-1] = rhs[t-1]
	}

	copy(parity[:t], reg[:t])
	return nil
}
