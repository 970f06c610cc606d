// Package slug derives URL-friendly category slugs from names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonWord matches runs of anything that is not a word character or a space.
	nonWord = regexp.MustCompile(`[^\w ]+`)
	// spaces matches runs of spaces.
	spaces = regexp.MustCompile(` +`)
)

// Make derives the slug for a category name: lower-case, strip everything
// except word characters and spaces, then collapse each run of spaces into
// a single hyphen. The result is a pure function of the name, so two names
// differing only in case or punctuation collide.
// Example: "Tech News!" -> "tech-news"
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonWord.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, "-")
	return s
}
