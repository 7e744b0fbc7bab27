package shell

// splitArgs splits a command line on spaces. Double-quoted runs form one
// argument with the quotes stripped; there is no escaping inside quotes.
func splitArgs(line string) []string {
	var args []string
	var cur []byte
	inWord := false
	inQuote := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			inWord = true
		case c == ' ' && !inQuote:
			if inWord {
				args = append(args, string(cur))
				cur = cur[:0]
				inWord = false
			}
		default:
			cur = append(cur, c)
			inWord = true
		}
	}
	if inWord {
		args = append(args, string(cur))
	}
	return args
}
