// Package pathutil provides the canonical path representation used across the
// estimator: forward-slash separated, case-preserving, with up-level (`..`)
// segments kept verbatim. Every path that crosses a package boundary in this
// project is expected to be in this form.
package pathutil

import "strings"

// Normalize converts a platform-native path into the canonical forward-slash
// form. Drive prefixes and casing are preserved, `..` segments are kept
// verbatim, and a trailing separator is dropped. Normalize is idempotent.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Split breaks a normalized path into its segments. The root folder "." and
// the empty string yield no segments.
func Split(p string) []string {
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}

// Join assembles segments back into a normalized path. No segments yields
// ".", the canonical spelling of the tree root.
func Join(segments ...string) string {
	if len(segments) == 0 {
		return "."
	}
	return strings.Join(segments, "/")
}

// Dir returns the folder portion of a normalized file path: everything up to
// the final separator, or "." for a bare filename.
func Dir(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "."
	}
	if i == 0 {
		return "/"
	}
	return p[:i]
}

// Base returns the final segment of a normalized path.
func Base(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return p
	}
	return p[i+1:]
}

// Ascend walks up from folder by levels steps. It reports false when the walk
// underflows, i.e. there are fewer ancestor levels than requested.
func Ascend(folder string, levels int) (string, bool) {
	segments := Split(folder)
	if levels > len(segments) {
		return "", false
	}
	return Join(segments[:len(segments)-levels]...), true
}

// Descend appends segments below folder.
func Descend(folder string, segments ...string) string {
	if len(segments) == 0 {
		return folder
	}
	return Join(append(Split(folder), segments...)...)
}

// CommonPrefix returns the longest common leading string of the given paths,
// matching byte-wise the way os.path.commonprefix does.
func CommonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := paths[0]
	for _, p := range paths[1:] {
		for !strings.HasPrefix(p, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
