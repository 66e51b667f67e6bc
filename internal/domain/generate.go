package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strings"
)

const (
	// CodeLength is the fixed length of a shareable room code.
	CodeLength = 6

	// codeChars deliberately omits 0/O/1/I to keep codes easy to read aloud.
	codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var codeCharsLen = big.NewInt(int64(len(codeChars)))

// NewRoomCode draws a random fixed-length code. Uniqueness is enforced by the
// storage layer's unique index; callers retry on ErrCodeTaken.
func NewRoomCode() (string, error) {
	var sb strings.Builder
	sb.Grow(CodeLength)

	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, codeCharsLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeChars[n.Int64()])
	}

	return sb.String(), nil
}

// NewRoomColor draws three uniform bytes and formats them as a 6-character
// lowercase hex RGB string. Display metadata only, no failure mode.
func NewRoomColor() string {
	return fmt.Sprintf("%02x%02x%02x", mrand.IntN(256), mrand.IntN(256), mrand.IntN(256))
}
