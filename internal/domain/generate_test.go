package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := NewRoomCode()
		require.NoError(t, err)

		assert.Len(t, code, CodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeChars, c), "unexpected character %q in code %s", c, code)
		}

		seen[code] = struct{}{}
	}

	// 100 draws from a 32^6 space colliding would point at a broken source.
	assert.Greater(t, len(seen), 95)
}

func TestNewRoomCodeExcludesAmbiguousCharacters(t *testing.T) {
	for _, c := range "01IO" {
		assert.False(t, strings.ContainsRune(codeChars, c), "alphabet must not contain %q", c)
	}
}

func TestNewRoomColor(t *testing.T) {
	hexColor := regexp.MustCompile(`^[0-9a-f]{6}$`)

	for i := 0; i < 50; i++ {
		color := NewRoomColor()
		assert.Regexp(t, hexColor, color)
	}
}
