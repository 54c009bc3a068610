package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reMultiSpace          = regexp.MustCompile(`(\s)+`)
	reMoreThan2Linebreaks = regexp.MustCompile(`(\n){2,}`)
)

// SmartTrim collapses repeated spaces inside each line
// and keeps at most one empty line between paragraphs.
func SmartTrim(s string) string {
	oldLines := strings.Split(s, "\n")
	newLines := make([]string, 0, len(oldLines))
	for _, line := range oldLines {
		line = strings.TrimSpace(reMultiSpace.ReplaceAllString(line, "$1"))
		newLines = append(newLines, line)
	}
	s = strings.Join(newLines, "\n")
	s = reMoreThan2Linebreaks.ReplaceAllString(s, "$1$1")
	return strings.TrimSpace(s)
}

// NilIfBlank trims s and returns nil when nothing is left.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := SmartTrim(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func RuneCountAtMost(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}
