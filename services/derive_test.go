package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"A Mom's Day!!", "a-moms-day"},
		{"Hello World", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-hyphenated title", "alreadyhyphenated-title"},
		{"UPPER case & symbols #1", "upper-case-symbols-1"},
		{"simple", "simple"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.title), "title %q", tc.title)
	}
}

func TestExcerpt(t *testing.T) {
	exact := strings.Repeat("a", 150)
	assert.Equal(t, exact, excerpt(exact))

	longer := strings.Repeat("b", 151)
	assert.Equal(t, strings.Repeat("b", 150)+"...", excerpt(longer))

	assert.Equal(t, "short", excerpt("short"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, readingTime(""))
	assert.Equal(t, 1, readingTime("one two three"))
	assert.Equal(t, 1, readingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, readingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 3, readingTime(strings.Repeat("word ", 450)))
}
