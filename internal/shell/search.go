package shell

import (
	"strings"
)

const (
	searchStart   = "--- START OF FILE ---"
	searchDivider = "----------------"
	searchEnd     = "--- END OF FILE ---"
)

// SearchSegments lower-cases content and term and, if term occurs in the
// content, cuts the content after every occurrence so that each segment ends
// with its match. The last segment holds whatever follows the final match and
// is dropped when empty. A nil result means there was no match.
//
// With preserveCase the segments are cut from the original content at the
// same offsets, as long as lower-casing did not change the byte length.
func SearchSegments(content, term string, preserveCase bool) []string {
	lowered := strings.ToLower(content)
	needle := strings.ToLower(term)

	if needle == "" || !strings.Contains(lowered, needle) {
		return nil
	}

	segments := strings.SplitAfter(lowered, needle)
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	if !preserveCase || len(lowered) != len(content) {
		return segments
	}

	original := make([]string, len(segments))
	offset := 0
	for i, seg := range segments {
		original[i] = content[offset : offset+len(seg)]
		offset += len(seg)
	}

	return original
}
