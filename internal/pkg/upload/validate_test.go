package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHead = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestValidateImageBySniff(t *testing.T) {
	mime, err := ValidateImageBySniff("cover.PNG", pngHead)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	mime, err = ValidateImageBySniff("photo.avif", []byte{0x00, 0x01, 0x02, 0x03})
	require.NoError(t, err)
	assert.Equal(t, "image/avif", mime)
}

func TestValidateImageBySniffRejects(t *testing.T) {
	_, err := ValidateImageBySniff("logo.svg", []byte("<svg></svg>"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ValidateImageBySniff("evil.png", []byte("<html><script>alert(1)</script></html>"))
	assert.ErrorIs(t, err, ErrScriptable)

	_, err = ValidateImageBySniff("notes.png", []byte("just some plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(100, 1000))
	assert.ErrorIs(t, CheckSize(0, 1000), ErrEmpty)
	assert.ErrorIs(t, CheckSize(1001, 1000), ErrTooLarge)
	assert.NoError(t, CheckSize(1<<30, 0))
}
