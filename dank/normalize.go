// Package dank implements the Dank Memer gift/share tracking core:
// display name normalization, gift line parsing, and aggregate updates.
package dank

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var nonPlain = regexp.MustCompile(`[^a-zA-Z0-9 \n.]`)

// Normalize reduces a display name to a plain ASCII comparison form:
// canonical decomposition, transliteration, stripping everything that isn't
// alphanumeric/space/period, and collapsing whitespace runs.
// It always returns a best-effort result, never an error.
func Normalize(text string) string {
	t := norm.NFKC.String(text)
	t = norm.NFD.String(t)
	t = unidecode.Unidecode(t)
	t = nonPlain.ReplaceAllString(t, "")
	return strings.Join(strings.Fields(t), " ")
}

// IsAdversarial reports whether any character in any whitespace-delimited
// segment of text is not a plain ASCII alphanumeric.
func IsAdversarial(text string) bool {
	for _, segment := range strings.Fields(text) {
		for _, r := range segment {
			if !isASCIIAlnum(r) {
				return true
			}
		}
	}
	return false
}

// CleanName returns name unchanged if it is already plain ASCII, and the
// normalized form otherwise. Already-clean names skip normalization entirely.
func CleanName(name string) string {
	if !IsAdversarial(name) {
		return name
	}
	return Normalize(name)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
