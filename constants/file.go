package constants

import "strings"

// MaxOptions is the number of ordered multiple-choice option columns a question carries.
const MaxOptions = 6

// AllowedExtensions holds the file extensions the extraction surface accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
