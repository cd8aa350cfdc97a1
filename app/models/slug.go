package models

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

const (
	// MaxSlugLength matches the width of the slug column.
	MaxSlugLength = 255

	fallbackSlug = "news"
)

var validate = validator.New()

// Slugify transliterates a title into a lowercase, hyphen separated URL segment.
// Titles without any transliterable character produce "news".
func Slugify(title string) string {
	s := NormalizeSlug(title)
	if s == "" {
		return fallbackSlug
	}
	return s
}

// NormalizeSlug cleans a user supplied slug the same way titles are processed.
// Unlike Slugify it may return an empty string.
func NormalizeSlug(s string) string {
	out := slug.Make(s)
	if len(out) > MaxSlugLength {
		out = strings.TrimRight(out[:MaxSlugLength], "-_")
	}
	return out
}

// SlugCandidate returns base for n == 0 and base-n otherwise. The base is cut so the
// result always fits into the slug column.
func SlugCandidate(base string, n int) string {
	if n <= 0 {
		return base
	}
	suffix := "-" + strconv.Itoa(n)
	if len(base)+len(suffix) > MaxSlugLength {
		base = strings.TrimRight(base[:MaxSlugLength-len(suffix)], "-_")
	}
	return base + suffix
}

// SlugCounter reports the counter encoded in candidate relative to base, i.e. 0 for
// base itself and n for base-n. ok is false when candidate was not derived from base.
func SlugCounter(base, candidate string) (n int, ok bool) {
	if candidate == base {
		return 0, true
	}
	rest, found := strings.CutPrefix(candidate, base+"-")
	if !found || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 || strconv.Itoa(n) != rest {
		return 0, false
	}
	return n, true
}

// IsSlug reports whether s is already a clean slug.
func IsSlug(s string) bool {
	return slug.IsSlug(s)
}
