package gmail

import (
	"regexp"
	"strings"
)

var linkRegexp = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")

// noiseMarkers flag links that are newsletter plumbing rather than articles:
// unsubscribe flows, mailing list management, and tracking pixels.
var noiseMarkers = []string{
	"unsubscribe",
	"mailto:",
	"list-manage",
	"tracking",
	"beacon",
	"pixel",
}

// ExtractLinks pulls the article links out of an email body. Tracking and
// unsubscribe links are dropped, duplicates are collapsed to their first
// occurrence, and the original order is otherwise preserved.
func ExtractLinks(body string) []string {
	matches := linkRegexp.FindAllString(body, -1)

	links := make([]string, 0, len(matches))
	seen := make(map[string]bool)
	for _, link := range matches {
		if seen[link] || isNoiseLink(link) {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}
	return links
}

func isNoiseLink(link string) bool {
	for _, marker := range noiseMarkers {
		if strings.Contains(link, marker) {
			return true
		}
	}
	return false
}
