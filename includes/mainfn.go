package includes

import "regexp"

// mainPatterns match the common spellings of a C/C++ program entry point.
// Occurrences inside comments are matched too; the report section fed by
// this check is advisory.
var mainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`void\s*main\s*\(\s*void\s*\)\s*{`),
	regexp.MustCompile(`int\s*main\s*\(\s*void\s*\)\s*{`),
	regexp.MustCompile(`void\s*main\s*\(\s*\)\s*{`),
	regexp.MustCompile(`int\s*main\s*\(\s*\)\s*{`),
	regexp.MustCompile(`int\s*main\s*\(\s*int\s*argc\s*,\s*char\s*\*\*\s*argv\s*\)\s*{`),
	regexp.MustCompile(`int\s*main\s*\(\s*int\s*argc\s*,\s*char\s*\*\s*argv\s*\[\]\)\s*{`),
}

// HasMainFunction reports whether the source text defines a main() function
// in one of the recognized forms.
func HasMainFunction(text []byte) bool {
	for _, pattern := range mainPatterns {
		if pattern.Match(text) {
			return true
		}
	}
	return false
}
