package domain

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxHashtagRunes bounds the length of a stored hashtag.
const MaxHashtagRunes = 20

var hashtagRE = regexp.MustCompile(`#\w+`)

// ExtractHashtags returns the distinct lower-cased tags (without '#') found
// in text, in first-seen order. Tags longer than MaxHashtagRunes are skipped.
func ExtractHashtags(text string) []string {
	matches := hashtagRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}
	}
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := lower.String(m[1:])
		if utf8.RuneCountInString(tag) > MaxHashtagRunes {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
