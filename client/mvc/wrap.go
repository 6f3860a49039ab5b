package mvc

import "strings"

// wrap breaks text into lines of at most width bytes at word boundaries.
// Words longer than width get a line of their own.
func wrap(text string, width int) string {
	var b strings.Builder
	curLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := len(word)
		switch {
		case curLen == 0:
		case curLen+1+wordLen > width:
			b.WriteString("\n")
			curLen = 0
		default:
			b.WriteString(" ")
			curLen++
		}
		b.WriteString(word)
		curLen += wordLen
	}
	return b.String()
}
