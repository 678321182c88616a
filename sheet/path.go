package sheet

import (
	"path"
	"strings"
)

// isURL reports whether s already names a resource rather than a path
// relative to the sheet's own location: a protocol-relative `//...`
// reference, or any scheme matching `/[a-z][a-z0-9+.-]*:/i` (§4.5).
func isURL(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	if len(s) == 0 {
		return false
	}
	c := s[0]
	if !isAlpha(c) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-' || c == '+' || c == '.':
		case isAlpha(c) || (c >= '0' && c <= '9'):
		case c == ':':
			return true
		default:
			return false
		}
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// resolveRelativePath resolves rel against the directory of base,
// normalizing `.`/`..` segments (an absolute leading `/` on rel resets
// to root, discarding base's directory entirely), then strips an
// inputExtension suffix if present and appends outputExtension — or
// appends outputExtension outright if the stripped/original path
// doesn't already end with it (§4.5).
func resolveRelativePath(base, rel, inputExtension, outputExtension string) string {
	var combined string
	if strings.HasPrefix(rel, "/") {
		combined = rel[1:]
	} else {
		dir := path.Dir(strings.TrimPrefix(base, "/"))
		if dir == "." {
			combined = rel
		} else {
			combined = dir + "/" + rel
		}
	}
	absolutePath := normalizeSegments(combined)
	if inputExtension == "" && outputExtension == "" {
		return absolutePath
	}
	if strings.HasSuffix(absolutePath, inputExtension) {
		return strings.TrimSuffix(absolutePath, inputExtension) + outputExtension
	}
	if strings.HasSuffix(absolutePath, outputExtension) {
		return absolutePath
	}
	return absolutePath + outputExtension
}

// normalizeSegments collapses `.` segments and resolves `..` segments
// against whatever real segment precedes them, leaving a leading run
// of unresolved `..` segments in place when the path climbs above
// wherever resolution started (mirroring path.Clean's behavior for a
// relative path, but over '/'-joined segments only).
func normalizeSegments(p string) string {
	parts := strings.Split(p, "/")
	stack := make([]string, 0, len(parts))
	for _, seg := range parts {
		switch seg {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else {
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, seg)
		}
	}
	return strings.Join(stack, "/")
}
