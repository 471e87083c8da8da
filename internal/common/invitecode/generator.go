package invitecode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/dayspring/gather/internal/common/invitecode Generator

// Generator mints short shareable invite codes. Codes are unique enough
// that a per-session collision check suffices; a collision is handled by
// calling Generate again.
type Generator interface {
	Generate() string
}

const (
	// CodeLength is the number of characters in a generated code
	CodeLength = 8

	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DefaultGenerator implements Generator with crypto/rand
type DefaultGenerator struct{}

// New returns a crypto/rand backed code generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// Generate returns a fresh 8-character uppercase alphanumeric code.
// Stateless and side-effect free.
func (g *DefaultGenerator) Generate() string {
	max := big.NewInt(int64(len(charset)))

	code := make([]byte, CodeLength)
	for i := range code {
		// rand.Int draws uniformly over the charset and never returns an
		// error on supported platforms
		n, _ := rand.Int(rand.Reader, max)
		code[i] = charset[n.Int64()]
	}
	return string(code)
}

// Normalize canonicalizes a user-supplied code for case-insensitive lookup.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
