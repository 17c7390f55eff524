package numfmt

// maxSections is the number of sections a format code may carry: positive,
// negative, zero and text.  Extra sections are discarded.
const maxSections = 4

// splitSections splits a format code on top-level semicolons.  Semicolons
// inside double quotes or square brackets do not split.  Quotes are ignored
// inside brackets and brackets inside quotes; either bracket character
// toggles bracket mode, so nothing nests.  An unterminated
// quote or bracket simply absorbs the rest of the string.  The last segment
// is always returned, even when empty.
func splitSections(format string) []string {
	var (
		sections   []string
		inQuotes   bool
		inBrackets bool
		start      int
	)
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '"':
			if !inBrackets {
				inQuotes = !inQuotes
			}
		case '[', ']':
			if !inQuotes {
				inBrackets = !inBrackets
			}
		case ';':
			if !inQuotes && !inBrackets {
				sections = append(sections, format[start:i])
				start = i + 1
			}
		}
	}
	return append(sections, format[start:])
}
