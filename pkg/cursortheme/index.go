package cursortheme

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// themeInherits extracts the parent theme name declared by an index.theme
// file. It returns ok=false when the file is absent, unreadable, or declares
// no inheritance. Only the first line of the form "Inherits = value" counts;
// a value list ("parent, other") contributes its first entry.
func themeInherits(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		rest, ok := strings.CutPrefix(line, "Inherits")
		if !ok {
			continue
		}
		rest, ok = strings.CutPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), "=")
		if !ok {
			continue
		}

		rest = strings.TrimLeftFunc(rest, isIndexSeparator)
		if i := strings.IndexFunc(rest, isIndexSeparator); i >= 0 {
			rest = rest[:i]
		}
		if rest != "" {
			return rest, true
		}
	}
	return "", false
}

// isIndexSeparator matches the separator characters the xcursor index format
// allows around Inherits values.
func isIndexSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}
