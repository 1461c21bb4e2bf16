package visibility

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minMaskStars = 3

// Mask hides a username from viewers that may not see it. Viewers always see
// their own name.
func Mask(username string, viewerID, subjectID uint, canSee bool) string {
	if canSee || viewerID == subjectID || username == "" {
		return username
	}

	first, size := utf8.DecodeRuneInString(username)
	rest := utf8.RuneCountInString(username[size:])
	if rest < minMaskStars {
		rest = minMaskStars
	}

	return string(unicode.ToUpper(first)) + strings.Repeat("*", rest)
}
