package imageprocessor

import (
	"bytes"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeWebP(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestThumbnailKey(t *testing.T) {
	key, ok := ThumbnailKey("news/covers/x.jpg", SmallThumbnail)
	assert.True(t, ok)
	assert.Equal(t, "thumbnails/small/news/covers/x.webp", key)

	key, ok = ThumbnailKey("team/avatars/y.PNG", MediumThumbnail)
	assert.True(t, ok)
	assert.Equal(t, "thumbnails/medium/team/avatars/y.webp", key)

	_, ok = ThumbnailKey("about/logo.avif", SmallThumbnail)
	assert.False(t, ok)
	_, ok = ThumbnailKey("", SmallThumbnail)
	assert.False(t, ok)
}

func TestThumbnailShrinksToVariant(t *testing.T) {
	data := encodeTestImage(t, 800, 400, imaging.PNG)

	out, err := Thumbnail(data, "cover.png", SmallThumbnail)
	require.NoError(t, err)
	w, h := decodeWebP(t, out)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	out, err = Thumbnail(data, "cover.png", MediumThumbnail)
	require.NoError(t, err)
	w, h = decodeWebP(t, out)
	assert.Equal(t, 500, w)
	assert.Equal(t, 250, h)
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	data := encodeTestImage(t, 60, 40, imaging.JPEG)

	out, err := Thumbnail(data, "avatar.jpg", SmallThumbnail)
	require.NoError(t, err)
	w, h := decodeWebP(t, out)
	assert.Equal(t, 60, w)
	assert.Equal(t, 40, h)
}

func TestThumbnailFromWebP(t *testing.T) {
	src, err := Thumbnail(encodeTestImage(t, 600, 600, imaging.PNG), "src.png", MediumThumbnail)
	require.NoError(t, err)

	out, err := Thumbnail(src, "photo.webp", SmallThumbnail)
	require.NoError(t, err)
	w, h := decodeWebP(t, out)
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)
}

func TestThumbnailRejectsCorruptData(t *testing.T) {
	_, err := Thumbnail([]byte("not a png"), "broken.png", SmallThumbnail)
	assert.Error(t, err)
}
