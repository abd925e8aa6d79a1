package errors

import (
	"strings"
	"unicode"
)

// maxLabelLength bounds header fields so they stay on one header line.
const maxLabelLength = 120

// ValidateLabel validates a free-text header field (operator, site, revision)
// before it is printed on every page of the report.
//
// The rules are intentionally conservative:
//   - No empty values when required is true
//   - No control characters (tabs and newlines would break the header lines)
//   - Maximum length of 120 characters
func ValidateLabel(field, value string, required bool) error {
	if strings.TrimSpace(value) == "" {
		if required {
			return New(ErrCodeInvalidInput, "%s cannot be empty", field)
		}
		return nil
	}

	if len([]rune(value)) > maxLabelLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, maxLabelLength)
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}

	return nil
}

// ValidateAssetPath validates an optional image path (logo, signature).
// An empty path is valid and means "no image". Null bytes are rejected
// because the operating system would silently truncate the path.
func ValidateAssetPath(field, path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, 0) {
		return New(ErrCodeInvalidPath, "%s path contains a null byte", field)
	}
	if len(path) > 4096 {
		return New(ErrCodeInvalidPath, "%s path too long", field)
	}
	return nil
}
