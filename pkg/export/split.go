package export

import "strings"

// SplitContent partitions text into line-aligned parts of at most maxChars characters.
// A line longer than maxChars becomes a part on its own. Joining the parts yields text.
func SplitContent(text string, maxChars int) []string {
	var parts []string
	var current strings.Builder
	currentChars := 0

	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i+1]
		}
		text = text[len(line):]

		lineChars := CharCount(line)
		if currentChars+lineChars > maxChars && currentChars > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentChars = 0
		}
		current.WriteString(line)
		currentChars += lineChars
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
