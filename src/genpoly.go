package rsencoder

// code is one registered (symbol size, parity count) configuration: the
// coefficients of its generator polynomial and the multiply-by-coefficient
// table the encoder works from.
//
// The encoder never performs general field multiplication. The only values
// ever multiplied are a feedback symbol against the handful of fixed
// generator coefficients, so those products are tabulated outright -
// products[a][j] = a * coef[j] - which is cheaper in branches and memory
// than log/antilog multiplication with its zero special case.
type code struct {
	field *field

	// coef holds the generator polynomial coefficients, highest degree
	// first, with the leading 1 dropped (it is implicit in the LFSR step).
	coef []byte

	// products[a][j] = a * coef[j] in GF(2^m).
	products [][]byte
}

type configKey struct {
	m int // bits per symbol
	t int // parity symbols
}

// The closed registry of precomputed codes. 4-bit symbols with an even
// number of parity symbols (t parity symbols correct t/2 symbol errors).
// Nothing is added at runtime; configurable generator polynomials are
// deliberately unsupported.
var codes = buildCodes()

func buildCodes() map[configKey]*code {
	var m = make(map[configKey]*code)
	for _, t := range []int{2, 4, 6, 8} {
		m[configKey{4, t}] = newCode(fields[4], t)
	}
	return m
}

// generatorPoly expands g(x) = (x - alpha)(x - alpha^2)...(x - alpha^t)
// into coefficients, ascending order, g[d] the coefficient of x^d.
// Subtraction is addition in GF(2^m), so each root alpha^i contributes a
// factor (x + alpha^i).
func (f *field) generatorPoly(t int) []byte {
	var g = make([]byte, t+1)
	g[0] = 1
	for i := 1; i <= t; i++ {
		var root = f.alog[i%f.blockLen]
		for d := i; d > 0; d-- {
			g[d] = f.Add(g[d-1], f.mul(g[d], root))
		}
		g[0] = f.mul(g[0], root)
	}
	return g
}

func newCode(f *field, t int) *code {
	var g = f.generatorPoly(t)

	var coef = make([]byte, t)
	for j := 0; j < t; j++ {
		coef[j] = g[t-1-j]
	}

	var products = make([][]byte, f.elements)
	for a := 0; a < f.elements; a++ {
		products[a] = make([]byte, t)
		for j := 0; j < t; j++ {
			products[a][j] = f.mul(byte(a), coef[j])
		}
	}

	return &code{field: f, coef: coef, products: products}
}
