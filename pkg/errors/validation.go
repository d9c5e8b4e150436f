package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// elementNameRegex matches valid custom element names: lowercase, starting
// with a letter and containing at least one hyphen.
var elementNameRegex = regexp.MustCompile(`^[a-z][a-z0-9._]*-[a-z0-9._-]*$`)

// reservedElementNames are hyphenated names that may never be defined.
var reservedElementNames = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

// ValidateElementName validates a custom element kind name such as "drag-box".
//
// The rules follow the custom element naming convention:
//   - No empty names
//   - Must start with a lowercase ASCII letter
//   - Must contain a hyphen
//   - No uppercase letters, whitespace or control characters
//   - Must not be one of the reserved hyphenated names
func ValidateElementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "element name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "element name %q contains whitespace or control characters", name)
		}
	}

	if strings.ToLower(name) != name {
		return New(ErrCodeInvalidName, "element name %q must be lowercase", name)
	}

	if !strings.Contains(name, "-") {
		return New(ErrCodeInvalidName, "element name %q must contain a hyphen", name)
	}

	if !elementNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid element name: %q", name)
	}

	if reservedElementNames[name] {
		return New(ErrCodeInvalidName, "element name %q is reserved", name)
	}

	return nil
}

// ValidateElementID validates an element id attribute.
// Ids are used as stable labels in logs, scenario expectations and exports,
// so they must be non-empty and free of whitespace.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}

	const maxIDLength = 128
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "element id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element id %q contains whitespace or control characters", id)
		}
	}

	return nil
}
