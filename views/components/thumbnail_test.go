package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailCover(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Thumbnail("/media/news/covers/a.jpg", "Patch 1.0", CoverPreview).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `src="/media/news/covers/a.jpg"`)
	assert.Contains(t, out, "width:80px;height:50px;object-fit:cover;border-radius:4px")
}

func TestThumbnailAvatarIsRound(t *testing.T) {
	out := string(ThumbnailHTML("/media/team/avatars/b.png", "Ann", AvatarPreview))
	assert.Contains(t, out, "width:40px;height:40px")
	assert.Contains(t, out, "border-radius:50%")
}

func TestThumbnailPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, string(ThumbnailHTML("", "none", CoverPreview)))
}

func TestThumbnailEscapesAttributes(t *testing.T) {
	out := string(ThumbnailHTML("/media/x.png", `"><script>`, CoverPreview))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&#34;&gt;&lt;script&gt;")
}
