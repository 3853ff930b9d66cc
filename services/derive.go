package services

import (
	"math"
	"regexp"
	"strings"
)

const defaultCoverImage = "/images/default-cover.jpg"

const excerptLength = 150

// wordsPerMinute is the reading speed assumed for the reading_time field.
const wordsPerMinute = 200

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// slugify lowercases the title, strips punctuation, and collapses whitespace
// runs into single hyphens.
func slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespaceRe.ReplaceAllString(s, "-")
}

// excerpt returns the first 150 characters of content, with an ellipsis only
// when content was actually truncated.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// readingTime estimates minutes to read, rounded up.
func readingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
