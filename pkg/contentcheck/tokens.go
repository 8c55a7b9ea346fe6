package contentcheck

import "regexp"

// commandToken matches a backslash followed by two or more lowercase letters.
// This is a lexical approximation of a LaTeX command: commands inside
// comments or verbatim blocks are reported like any other.
var commandToken = regexp.MustCompile(`\\([a-z]{2,})`)

// ExtractCommands returns the command names invoked in text, in order of
// appearance and with repetitions. A backslash that is itself escaped
// (as in `\\emph`) does not start a command.
func ExtractCommands(text string) []string {
	var names []string
	for _, m := range commandToken.FindAllStringSubmatchIndex(text, -1) {
		if start := m[0]; start > 0 && text[start-1] == '\\' {
			continue
		}
		names = append(names, text[m[2]:m[3]])
	}
	return names
}
