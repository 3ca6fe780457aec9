package rsencoder

import "fmt"

// field holds the precomputed arithmetic tables for GF(2^m) under a fixed
// primitive polynomial. Tables are built once at process start and never
// mutated afterwards, so any number of concurrent Encode calls may read
// them without locking.
type field struct {
	m        int // bits per symbol
	elements int // 2^m
	blockLen int // 2^m - 1, the natural Reed-Solomon block length

	// add[a][b] = a + b. Field addition is polynomial addition modulo 2,
	// i.e. XOR, tabulated so the encode path is lookups only.
	add [][]byte

	// alog[i] = alpha^i for i < blockLen, alog[blockLen] = 0.
	// log[a] is its inverse, with log[0] = blockLen standing in for the
	// undefined log of zero.
	alog []byte
	log  []byte
}

// Widths with registered field tables. 5-bit symbols fit the table layout
// but no tables have been generated for them yet, so the entry stays absent
// and lookups fail with ErrInvalidSymbolSize rather than producing values
// that merely look valid.
var fields = map[int]*field{
	4: mustField(4, 0x13), // x^4 + x + 1
}

// newField builds the GF(2^m) tables by walking the powers of the
// primitive element: alpha^(i+1) is alpha^i shifted up one bit and reduced
// by the generator polynomial of the field. The walk must visit every
// nonzero element exactly once before returning to 1, otherwise poly is
// not primitive and the tables would be garbage.
func newField(m int, poly uint) (*field, error) {
	if m < 2 || m > MaxSymbolSize {
		return nil, fmt.Errorf("symbol size %d outside supported range 2..%d", m, MaxSymbolSize)
	}

	var f = &field{
		m:        m,
		elements: 1 << m,
		blockLen: 1<<m - 1,
	}

	f.alog = make([]byte, f.blockLen+1)
	f.log = make([]byte, f.elements)
	f.log[0] = byte(f.blockLen)
	f.alog[f.blockLen] = 0

	var sr = 1
	for i := 0; i < f.blockLen; i++ {
		f.log[sr] = byte(i)
		f.alog[i] = byte(sr)

		sr <<= 1
		if sr&f.elements != 0 {
			sr ^= int(poly)
		}
		sr &= f.blockLen

		if sr == 1 && i != f.blockLen-1 {
			return nil, fmt.Errorf("polynomial %#x is not primitive over GF(2^%d)", poly, m)
		}
	}
	if sr != 1 {
		return nil, fmt.Errorf("polynomial %#x is not primitive over GF(2^%d)", poly, m)
	}

	f.add = make([][]byte, f.elements)
	for a := 0; a < f.elements; a++ {
		f.add[a] = make([]byte, f.elements)
		for b := 0; b < f.elements; b++ {
			f.add[a][b] = byte(a ^ b)
		}
	}

	return f, nil
}

func mustField(m int, poly uint) *field {
	var f, err = newField(m, poly)
	if err != nil {
		panic(err)
	}
	return f
}

// Add returns a + b in GF(2^m). Both operands must be field elements.
func (f *field) Add(a, b byte) byte {
	return f.add[a][b]
}

// mul is general field multiplication via the log/antilog tables. It is
// only used while building the generator polynomial tables and by test
// reference code; Encode never calls it.
func (f *field) mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.alog[(int(f.log[a])+int(f.log[b]))%f.blockLen]
}
