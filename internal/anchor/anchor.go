// Package anchor derives the intra-document link targets used by the
// summary table. An anchor is built from an entry's title and date:
//
//	anchor.Slug("Hello World!", date) // "#hello-world-2024-09-30"
//
// The punctuation class below is part of the output format. Changing it
// changes every previously published link, so treat it as versioned.
package anchor

import (
	"regexp"
	"strings"

	"github.com/gorewood/yasunori/internal/catalog"
)

// PunctuationClass lists the runes stripped from titles: an ASCII set
// followed by its full-width counterparts. Hyphens and underscores survive.
const PunctuationClass = "!@#$%^&*()+|~=`[]{};':\",.<>?" +
	"！＂＃＄％＆＇（）＊＋，－．／：；＜＝＞？＠［＼］＾＿｀｛｜｝～"

var punctuation = regexp.MustCompile("[" + regexp.QuoteMeta(PunctuationClass) + "]")

// spaces maps ASCII and ideographic spaces to hyphens.
var spaces = strings.NewReplacer("　", "-", " ", "-")

// Slug returns "#<sanitized-title>-<date>". It never fails; a title made
// only of punctuation yields "#-<date>".
func Slug(title string, date catalog.Date) string {
	return "#" + SanitizeTitle(title) + "-" + strings.ToLower(date.String())
}

// SanitizeTitle hyphenates spaces, lowercases, and strips the punctuation class.
func SanitizeTitle(title string) string {
	lowered := strings.ToLower(spaces.Replace(title))
	return punctuation.ReplaceAllString(lowered, "")
}
