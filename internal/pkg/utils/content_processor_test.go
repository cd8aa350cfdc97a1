package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "  \n ", ""},
		{"single paragraph", "Hello", "<p>Hello</p>"},
		{"line break", "one\ntwo", "<p>one<br>two</p>"},
		{"paragraphs", "one\r\n\r\ntwo", "<p>one</p>\n<p>two</p>"},
		{"escapes markup", "<b>bold</b> & co", "<p>&lt;b&gt;bold&lt;/b&gt; &amp; co</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(FormatBody(tt.in)))
		})
	}
}

func TestStripAndTruncate(t *testing.T) {
	assert.Equal(t, "Hello world", StripAndTruncate("<p>Hello</p>\n\n<p>world</p>", 50))
	assert.Equal(t, "Новый…", StripAndTruncate("Новый мод", 5))
	assert.Equal(t, "a & b", StripAndTruncate("a &amp; b", 0))
}
