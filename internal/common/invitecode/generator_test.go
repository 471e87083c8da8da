package invitecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShape(t *testing.T) {
	g := New()

	for i := 0; i < 100; i++ {
		code := g.Generate()
		assert.Len(t, code, CodeLength)

		for _, c := range code {
			ok := (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			assert.True(t, ok, "unexpected character %q in code %s", c, code)
		}
	}
}

func TestGenerateVaries(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[g.Generate()] = true
	}

	// 50 draws from a 36^8 space should never collide
	assert.Len(t, seen, 50)
}

func TestGenerateDrawsUniformly(t *testing.T) {
	g := New()

	// 256 is not a multiple of the charset size, so a byte-mod draw
	// would over-represent the first four characters. Their combined
	// share over many draws must stay near 4/36.
	const codes = 5000
	first4 := 0
	for i := 0; i < codes; i++ {
		for _, c := range g.Generate() {
			if c >= 'A' && c <= 'D' {
				first4++
			}
		}
	}

	expected := float64(codes*CodeLength) * 4 / 36
	assert.InDelta(t, expected, float64(first4), 320)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABCD1234", Normalize("abcd1234"))
	assert.Equal(t, "ABCD1234", Normalize("  AbCd1234 "))
	assert.Equal(t, "", Normalize("   "))
}
