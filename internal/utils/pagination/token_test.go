package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	postedAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)

	token := EncodeMultiFieldToken(postedAt, "42")
	assert.NotEmpty(t, token, "Token should not be empty")

	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, []string{postedAt, "42"}, fields, "Fields should round-trip in order")

	// A single field decodes to a single element, not an error.
	single, err := DecodeMultiFieldToken(EncodeMultiFieldToken("only"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"only"}, single)
}

func TestDecodeMultiFieldTokenError(t *testing.T) {
	_, err := DecodeMultiFieldToken("%%% not base64 %%%")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")
}
