package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UploadURLPrefix is the path under which stored uploads are served.
const UploadURLPrefix = "/uploads/"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client supplied filename to a safe ASCII name.
// Unicode is folded to ASCII with NFKD and anything else is dropped, slashes
// become word breaks, whitespace runs become underscores, every
// character outside [A-Za-z0-9_.-] is removed and leading or trailing dots
// and underscores are trimmed. The result may be empty.
//
//	"My cool movie.mov"  -> "My_cool_movie.mov"
//	"../../etc/passwd"   -> "etc_passwd"
func SanitizeFilename(name string) string {
	ascii := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(ascii, name)
	if err != nil {
		return ""
	}

	folded = strings.ReplaceAll(folded, "/", " ")
	joined := strings.Join(strings.Fields(folded), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// IsSafeFilename reports whether name can be used as-is inside the upload
// directory. Only names that sanitize to themselves qualify, which rules out
// separators, ".." and hidden files.
func IsSafeFilename(name string) bool {
	return name != "" && SanitizeFilename(name) == name
}

// UploadURL returns the path a stored upload is served under.
func UploadURL(filename string) string {
	return UploadURLPrefix + filename
}
