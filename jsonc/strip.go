package jsonc

// Strip removes // and /* */ comments from JSON-with-comments input.
//
// String literals are respected: comment markers inside a double-quoted
// string are copied through untouched, and an escaped quote does not end
// the string. Line comments end at the next \n or \r, which is kept in
// the output. Block comments end at */, which is consumed; line breaks
// inside the body are kept. Unterminated comments and strings end at end
// of input. Every byte of interest is ASCII, so byte-wise scanning is
// safe on UTF-8 input.
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	inLineComment := false
	inBlockComment := false

	for i := 0; i < len(data); i++ {
		c := data[i]
		var next byte
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch {
		case inLineComment:
			if c == '\n' || c == '\r' {
				inLineComment = false
				out = append(out, c)
			}
		case inBlockComment:
			switch {
			case c == '*' && next == '/':
				inBlockComment = false
				i++
			case c == '\n' || c == '\r':
				out = append(out, c)
			}
		case c == '"':
			// A quote toggles string mode unless escaped. Count the
			// backslashes immediately before it: an odd run means the
			// quote is escaped.
			backslashes := 0
			for j := i - 1; j >= 0 && data[j] == '\\'; j-- {
				backslashes++
			}
			if backslashes%2 == 0 {
				inString = !inString
			}
			out = append(out, c)
		case !inString && c == '/' && next == '/':
			inLineComment = true
			i++
		case !inString && c == '/' && next == '*':
			inBlockComment = true
			i++
		default:
			out = append(out, c)
		}
	}
	return out
}

// StripString is Strip for string input.
func StripString(s string) string {
	return string(Strip([]byte(s)))
}
