package markdown

import (
	"regexp"
	"strings"
)

var (
	codeFence     = regexp.MustCompile("(?m)^```[a-zA-Z]*[ \t]*$\n?")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis      = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	blockquote    = regexp.MustCompile(`(?m)^>\s?`)
	horizontal    = regexp.MustCompile(`(?m)^[ \t]*[-*_]([ \t]*[-*_]){2,}[ \t]*$`)
	starBullets   = regexp.MustCompile(`(?m)^([ \t]*)[*+][ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// Strip removes markdown syntax and keeps the text readable as plain output.
// List items keep a "- " marker and code keeps its content.
func Strip(content string) string {
	content = codeFence.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "$1")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = blockquote.ReplaceAllString(content, "")
	content = horizontal.ReplaceAllString(content, "")
	content = starBullets.ReplaceAllString(content, "$1- ")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
