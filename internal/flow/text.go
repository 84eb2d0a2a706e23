package flow

import (
	"strings"
	"unicode/utf8"
)

// OptionalText trims an optional field and turns blank values into nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// TextLen counts characters, not bytes.
func TextLen(s *string) int {
	if s == nil {
		return 0
	}
	return utf8.RuneCountInString(*s)
}

// Value dereferences an optional field, returning "" for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TrimList trims every item and drops blank ones.
func TrimList(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
