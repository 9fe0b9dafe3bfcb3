package forkstatus

import (
	"fmt"
	"regexp"
	"strings"
)

// The canonical block annotation is a standalone "Blocked by #N" line.
// Bodies written by older tool versions can contain the marker inline
// or with irregular spacing, those are located with the tolerant
// legacy pattern and migrated to the canonical form on rewrite.
var (
	markerLineRe       = regexp.MustCompile(`^Blocked by #\d+$`)
	legacyAnnotationRe = regexp.MustCompile(`Blocked\s+by\s*#\s*\d+`)
)

// blockAnnotation returns the canonical marker text referencing
// prNumber.
func blockAnnotation(prNumber int) string {
	return fmt.Sprintf("Blocked by #%d", prNumber)
}

// rewriteAnnotation returns body with its block annotation pointing at
// prNumber.
//
// A body line that is exactly a canonical marker is rewritten in
// place. Otherwise the first legacy pattern match is replaced.
// In both cases every later verbatim occurrence of the originally
// matched text is removed, duplicate markers accumulated by earlier
// inconsistent runs do not survive a rewrite.
// A body without any annotation gets the marker appended as a new
// paragraph.
func rewriteAnnotation(body string, prNumber int) string {
	annotation := blockAnnotation(prNumber)

	if match := findMarkerLine(body); match != "" {
		return replaceFirstAndStrip(body, match, annotation)
	}

	if match := legacyAnnotationRe.FindString(body); match != "" {
		return replaceFirstAndStrip(body, match, annotation)
	}

	if body == "" {
		return annotation
	}

	return body + "\n\n" + annotation
}

// findMarkerLine returns the first body line that is exactly a
// canonical marker, or an empty string.
func findMarkerLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if markerLineRe.MatchString(line) {
			return line
		}
	}

	return ""
}

// replaceFirstAndStrip replaces the first occurrence of match in body
// with annotation and removes every later verbatim occurrence of
// match.
func replaceFirstAndStrip(body, match, annotation string) string {
	first := strings.Index(body, match)
	tail := strings.ReplaceAll(body[first+len(match):], match, "")

	return body[:first] + annotation + tail
}
