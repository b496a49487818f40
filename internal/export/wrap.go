package export

import "strings"

// wrapText greedily word-wraps s to at most width characters per line.
// Words longer than width are broken mid-word. Returns at least one line,
// which may be empty when s is blank.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
	}

	for _, word := range words {
		for len([]rune(word)) > width {
			if line.Len() > 0 {
				flush()
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		if word == "" {
			continue
		}

		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case len([]rune(line.String()))+1+len([]rune(word)) <= width:
			line.WriteString(" ")
			line.WriteString(word)
		default:
			flush()
			line.WriteString(word)
		}
	}

	if line.Len() > 0 {
		flush()
	}

	return lines
}
