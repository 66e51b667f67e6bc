package json

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"nombre":"x","extra":1}`))

	var body struct {
		Name string `json:"nombre"`
	}
	assert.Error(t, Read(r, &body))
}

func TestRead(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"nombre":"General"}`))

	var body struct {
		Name string `json:"nombre"`
	}
	require.NoError(t, Read(r, &body))
	assert.Equal(t, "General", body.Name)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotFound(rec)

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":false,"msg":"Sala no encontrada"}`, rec.Body.String())
}
