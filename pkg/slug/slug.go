// Package slug derives URL-safe identifiers from titles and names.
package slug

import (
	"context"
	"strconv"
	"strings"

	gosimple "github.com/gosimple/slug"
)

const MaxLength = 100

// ExistsFunc reports whether a candidate slug is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make returns the lowercase, hyphenated ASCII form of text. When nothing
// survives normalization the fallback is used instead.
func Make(text, fallback string) string {
	base := gosimple.Make(text)
	if base == "" {
		base = fallback
	}

	return truncate(base, MaxLength)
}

// truncate cuts s to at most limit bytes without leaving a trailing hyphen.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return strings.TrimRight(s[:limit], "-")
}

// Unique returns base if it is free, otherwise the first free "base-N" for
// N = 1, 2, ...
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	candidate := base

	for suffix := 1; ; suffix++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}

		if !taken {
			return candidate, nil
		}

		candidate = withSuffix(base, suffix)
	}
}

func withSuffix(base string, suffix int) string {
	tail := "-" + strconv.Itoa(suffix)
	return truncate(base, MaxLength-len(tail)) + tail
}
