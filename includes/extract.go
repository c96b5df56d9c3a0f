// Package includes extracts `#include "..."` occurrences from source text.
// The extraction is purely lexical: conditional-compilation directives are
// not evaluated, so every textual occurrence is reported regardless of
// reachability, and macro-form includes (`#include FOO_H`) are skipped.
package includes

import "bytes"

// Occurrence is one textual `#include "..."` appearance in one source file.
// Token is the exact text between the quotes; Line is the zero-based line
// index. Read-only after extraction.
type Occurrence struct {
	File  string
	Token string
	Line  int
}

// Extract scans source text and returns, in file order, one Occurrence per
// quoted include directive. Angle-bracket system includes are ignored.
// Malformed lines (unterminated quote, empty filename) are skipped with no
// effect on the rest of the file.
func Extract(file string, text []byte) []Occurrence {
	var occurrences []Occurrence
	for lineIndex := 0; len(text) > 0; lineIndex++ {
		var line []byte
		if i := bytes.IndexByte(text, '\n'); i < 0 {
			line, text = text, nil
		} else {
			line, text = text[:i], text[i+1:]
		}
		token, ok := includeToken(line)
		if !ok {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			File:  file,
			Token: token,
			Line:  lineIndex,
		})
	}
	return occurrences
}

// includeToken extracts the quoted include token from a single line, if any.
func includeToken(line []byte) (string, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '#' {
		return "", false
	}
	line = bytes.TrimSpace(line[1:])
	rest, ok := bytes.CutPrefix(line, []byte("include"))
	if !ok {
		return "", false
	}
	if len(rest) == 0 || (rest[0] != ' ' && rest[0] != '\t') {
		// e.g. #include_next, or a directive that merely starts with
		// "include".
		return "", false
	}
	rest = bytes.TrimSpace(rest)
	if len(rest) == 0 || rest[0] != '"' {
		// Angle form or macro form. Both are out of scope here: angle
		// includes are system includes, macro includes cannot be
		// resolved without preprocessing.
		return "", false
	}
	rest = rest[1:]
	end := bytes.IndexByte(rest, '"')
	if end <= 0 {
		// Unterminated quote or empty filename.
		return "", false
	}
	return string(rest[:end]), true
}
