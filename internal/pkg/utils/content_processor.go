package utils

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	paragraphBreak = regexp.MustCompile(`\n{2,}`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// FormatBody turns plain text post content into HTML: blank lines separate
// paragraphs, single newlines become <br>. The text itself is escaped.
func FormatBody(content string) template.HTML {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range paragraphBreak.Split(content, -1) {
		lines := strings.Split(strings.TrimSpace(para), "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(line)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>\n")
	}
	return template.HTML(strings.TrimSuffix(b.String(), "\n"))
}

// StripAndTruncate removes markup and collapses whitespace, then cuts the text to
// at most maxLength runes, adding an ellipsis when something was cut.
func StripAndTruncate(content string, maxLength int) string {
	text := tagPattern.ReplaceAllString(content, " ")
	text = html.UnescapeString(text)
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLength])) + "…"
}
