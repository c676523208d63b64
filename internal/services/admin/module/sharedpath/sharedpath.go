// Package sharedpath parses record keys out of admin route suffixes.
package sharedpath

import (
	"net/url"
	"strings"
)

// EditSegment is the trailing segment of an edit-form route.
const EditSegment = "edit"

// Segments splits an escaped route suffix on "/", dropping blank segments.
func Segments(suffix string) []string {
	var out []string
	for _, part := range strings.Split(suffix, "/") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EditKey extracts and unescapes KEY from a "KEY/edit" suffix.
func EditKey(suffix string) (string, bool) {
	parts := Segments(suffix)
	if len(parts) != 2 || parts[1] != EditSegment {
		return "", false
	}
	key, err := url.PathUnescape(parts[0])
	if err != nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	return key, key != ""
}
