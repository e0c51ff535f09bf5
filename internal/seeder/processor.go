package seeder

import (
	"regexp"
	"strings"
	"unicode"
)

// ContentProcessor normalises scraped text into single-line catalog fields.
type ContentProcessor struct {
	multiWhitespace *regexp.Regexp
	htmlTags        *regexp.Regexp
	bracketRefs     *regexp.Regexp
}

func NewContentProcessor() *ContentProcessor {
	return &ContentProcessor{
		multiWhitespace: regexp.MustCompile(`\s+`),
		htmlTags:        regexp.MustCompile(`<[^>]*>`),
		bracketRefs:     regexp.MustCompile(`\[\d+\]`),
	}
}

// CleanContent strips leftover markup and footnote markers and collapses whitespace.
func (cp *ContentProcessor) CleanContent(content string) string {
	content = cp.htmlTags.ReplaceAllString(content, " ")
	content = cp.bracketRefs.ReplaceAllString(content, "")
	content = cp.multiWhitespace.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// CountWords estimates word count in text
func (cp *ContentProcessor) CountWords(text string) int {
	if text == "" {
		return 0
	}

	words := strings.FieldsFunc(text, func(c rune) bool {
		return unicode.IsSpace(c) || unicode.IsPunct(c)
	})

	// Filter out very short "words"
	count := 0
	for _, word := range words {
		if len(strings.TrimSpace(word)) > 1 {
			count++
		}
	}

	return count
}

// SameTitle compares titles ignoring case and surrounding space.
func (cp *ContentProcessor) SameTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
