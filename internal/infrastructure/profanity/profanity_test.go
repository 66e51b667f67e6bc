package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsProfanity(t *testing.T) {
	f := NewFilter()

	assert.True(t, f.ContainsProfanity("vete a la mierda"))
	assert.True(t, f.ContainsProfanity("MIERDA"))
	assert.False(t, f.ContainsProfanity("hola a todos"))
	assert.False(t, f.ContainsProfanity(""))

	// Whole words only.
	assert.False(t, f.ContainsProfanity("la merienda de hoy"))
}
