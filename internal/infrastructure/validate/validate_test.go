package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required()

	assert.Error(t, v(""))
	assert.Error(t, v("   "))
	assert.NoError(t, v("hola"))
}

func TestFieldPrefixesName(t *testing.T) {
	v := Field("nombre", Required())

	err := v("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nombre")
}

func TestLengthValidators(t *testing.T) {
	assert.NoError(t, MinLength(3)("abc"))
	assert.Error(t, MinLength(3)("ab"))

	assert.NoError(t, MaxLength(3)("abc"))
	assert.Error(t, MaxLength(3)("abcd"))

	assert.NoError(t, Length(6)("K7KQ2M"))
	assert.Error(t, Length(6)("K7KQ2"))
}

func TestHexObjectID(t *testing.T) {
	v := HexObjectID()

	assert.NoError(t, v("64f1c0a9e13b2a5d8c3f0a11"))
	assert.Error(t, v("64f1c0a9e13b2a5d8c3f0a1"))  // 23 chars
	assert.Error(t, v("64f1c0a9e13b2a5d8c3f0a1g")) // non-hex
	assert.Error(t, v(""))
}

func TestCompose(t *testing.T) {
	v := Compose(Required(), Length(6), Uppercase())

	assert.NoError(t, v("K7KQ2M"))
	assert.Error(t, v("k7kq2m"))
	assert.Error(t, v("K7K"))
	assert.Error(t, v(""))
}
