package archive

import "strings"

// NormalizePath converts a user-provided entry name to archive form.
//
// It performs the following transformations:
//   - Converts backslashes to forward slashes: `sprites\a.png` → "sprites/a.png"
//   - Strips leading slashes: "/sprites/a.png" → "sprites/a.png"
//   - Collapses consecutive slashes: "sprites//a.png" → "sprites/a.png"
//
// Trailing slashes are kept because they mark directory entries in zip.
// "." and ".." elements are preserved; they are matched literally.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	dir := strings.HasSuffix(p, "/")
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}

	parts := strings.Split(p, "/")
	result := parts[:0] // reuse backing array
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	out := strings.Join(result, "/")
	if dir {
		out += "/"
	}
	return out
}

// isDir reports whether a zip entry name denotes a directory.
func isDir(name string) bool {
	return strings.HasSuffix(name, "/")
}
