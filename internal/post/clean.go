package post

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanText makes post text safe to embed in a markdown document.
// URL tokens are wrapped in backticks first so that the brace pass sees
// them as already wrapped and leaves them alone.
func CleanText(text string) string {
	text = wrapURLs(text)
	text = wrapBraces(text)
	return text
}

// wrapURLs wraps every token beginning with "http" in backticks.
func wrapURLs(text string) string {
	return mapTokens(text, func(token string) string {
		if !strings.HasPrefix(token, "http") {
			return token
		}
		return "`" + token + "`"
	})
}

// wrapBraces wraps every token containing '{' or '}' in backticks unless it
// is already wrapped.
func wrapBraces(text string) string {
	return mapTokens(text, func(token string) string {
		if !strings.ContainsAny(token, "{}") || isWrapped(token) {
			return token
		}
		return "`" + token + "`"
	})
}

// mapTokens replaces every maximal run of non-space runes with fn(run).
// Space is anything unicode.IsSpace accepts; separators are copied as is.
func mapTokens(text string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(fn(text[start:i]))
				start = -1
			}
			b.WriteString(text[i : i+utf8.RuneLen(r)])
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(fn(text[start:]))
	}
	return b.String()
}

func isWrapped(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, "`") && strings.HasSuffix(token, "`")
}
