package markify

import "strings"

// RenderHeading renders a heading of the given level as an ATX heading.
//
// Block headings always start with a newline so they never run into the
// preceding content; a newline already leading text is folded into that one.
// Inline headings get the plain ATX form.
func RenderHeading(level int, text string, inline bool) string {
	if inline {
		return atxHeading(level, text)
	}
	return "\n" + atxHeading(level, text)
}

func atxHeading(level int, text string) string {
	level = min(max(level, 1), 6)
	text = strings.Join(strings.Fields(text), " ")
	return strings.Repeat("#", level) + " " + text
}
