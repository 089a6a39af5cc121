package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageArgs validates the package argument string handed to
// "poetry add". Poetry accepts names, constraints, paths and URLs here, so
// only inputs that can never be valid are rejected:
//   - No empty or whitespace-only strings
//   - No control characters (newlines, null bytes)
func ValidatePackageArgs(packages string) error {
	if strings.TrimSpace(packages) == "" {
		return New(ErrCodeInvalidInput, "no packages given")
	}

	for _, r := range packages {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "package arguments contain invalid control characters")
		}
	}

	return nil
}
