package parser

import "strings"

// forbiddenNameChars are rejected anywhere in a field name.
const forbiddenNameChars = "!#@$%^&*()"

// ValidFieldName reports whether name can be used as a C member identifier:
// none of the forbidden special characters, no leading digit, and not a
// primitive type spelling (those are reserved words in the output language).
//
// Object names are not checked here; see Object.
func ValidFieldName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	return !IsPrimitive(name)
}
