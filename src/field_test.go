package rsencoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Powers of alpha in GF(2^4) under x^4 + x + 1, the textbook sequence.
var gf16Alog = []byte{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}

func TestFieldTables_GF16(t *testing.T) {
	var f = fields[4]
	require.NotNil(t, f)

	assert.Equal(t, 16, f.elements)
	assert.Equal(t, 15, f.blockLen)

	for i, want := range gf16Alog {
		assert.Equal(t, want, f.alog[i], "alpha^%d", i)
		assert.Equal(t, byte(i), f.log[want], "log(%d)", want)
	}

	// Zero has no discrete log; its slots must never alias a real element.
	assert.Equal(t, byte(0), f.alog[f.blockLen])
	assert.Equal(t, byte(f.blockLen), f.log[0])
}

func TestAdditionTable(t *testing.T) {
	var f = fields[4]

	for a := 0; a < f.elements; a++ {
		for b := 0; b < f.elements; b++ {
			assert.Equal(t, byte(a^b), f.Add(byte(a), byte(b)))
		}
	}
}

func TestAdditionProperties(t *testing.T) {
	var f = fields[4]

	rapid.Check(t, func(t *rapid.T) {
		var a = byte(rapid.IntRange(0, f.elements-1).Draw(t, "a"))
		var b = byte(rapid.IntRange(0, f.elements-1).Draw(t, "b"))

		assert.Equal(t, f.Add(a, b), f.Add(b, a), "addition must be commutative")
		assert.Equal(t, a, f.Add(a, 0), "zero must be the additive identity")
		assert.Equal(t, byte(0), f.Add(a, a), "every element must be its own inverse")
	})
}

func TestMultiplication(t *testing.T) {
	var f = fields[4]

	rapid.Check(t, func(t *rapid.T) {
		var a = byte(rapid.IntRange(0, f.elements-1).Draw(t, "a"))
		var b = byte(rapid.IntRange(0, f.elements-1).Draw(t, "b"))
		var c = byte(rapid.IntRange(0, f.elements-1).Draw(t, "c"))

		assert.Equal(t, f.mul(a, b), f.mul(b, a))
		assert.Equal(t, a, f.mul(a, 1))
		assert.Equal(t, byte(0), f.mul(a, 0))

		// Distributes over addition.
		assert.Equal(t, f.Add(f.mul(a, b), f.mul(a, c)), f.mul(a, f.Add(b, c)))
	})
}

func TestNewField_RejectsNonPrimitivePolynomial(t *testing.T) {
	// x^4 + x^3 + x^2 + x + 1 is irreducible but its root has order 5,
	// so the power walk cycles early.
	var f, err = newField(4, 0x1F)
	assert.Nil(t, f)
	assert.Error(t, err)

	// x^4 + 1 is reducible.
	f, err = newField(4, 0x11)
	assert.Nil(t, f)
	assert.Error(t, err)
}

func TestNewField_RejectsWidthOutsideTableLayout(t *testing.T) {
	var f, err = newField(8, 0x11D)
	assert.Nil(t, f)
	assert.Error(t, err)
}
