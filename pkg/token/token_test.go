package token_test

import (
	"testing"

	"go-marketplace-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("Should produce 64 hex chars", func(t *testing.T) {
		tok, err := token.Generate()
		assert.NoError(t, err)
		assert.Len(t, tok, 64)
		assert.Regexp(t, "^[0-9a-f]+$", tok)
	})

	t.Run("Should not repeat across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			tok, err := token.Generate()
			assert.NoError(t, err)
			assert.False(t, seen[tok], "token repeated")
			seen[tok] = true
		}
	})
}
