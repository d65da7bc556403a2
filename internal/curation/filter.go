package curation

import (
	"sort"
	"strings"
)

// Sort orders for inspiration listings.
const (
	SortByDate  = "date"
	SortByScore = "score"
)

// DefaultListLimit caps inspiration listings when the caller does not ask
// for a limit.
const DefaultListLimit = 20

// InspirationFilters narrows and orders an inspiration listing. Zero values
// mean "no constraint"; Limit 0 falls back to DefaultListLimit.
type InspirationFilters struct {
	Query    string
	MinScore int
	MaxScore int
	DateFrom string
	DateTo   string
	SourceID string
	SortBy   string
	Limit    int
}

// FilterKind names the dominant filter in effect, for reporting back to the
// caller. Precedence follows the order query, score, date, source.
func (f InspirationFilters) FilterKind() string {
	switch {
	case f.Query != "":
		return "byQuery"
	case f.MinScore != 0 || f.MaxScore != 0:
		return "byScore"
	case f.DateFrom != "" || f.DateTo != "":
		return "byDate"
	case f.SourceID != "":
		return "bySource"
	}
	return "all"
}

// FilterInspirations applies f to the given inspirations and returns the
// matching slice, sorted and truncated. The input is not modified.
func FilterInspirations(inspirations []Inspiration, f InspirationFilters) []Inspiration {
	matched := make([]Inspiration, 0, len(inspirations))
	query := strings.ToLower(f.Query)

	for _, i := range inspirations {
		if query != "" &&
			!strings.Contains(strings.ToLower(i.Title), query) &&
			!strings.Contains(strings.ToLower(i.Description), query) {
			continue
		}
		if f.MinScore != 0 && i.Score < f.MinScore {
			continue
		}
		if f.MaxScore != 0 && i.Score > f.MaxScore {
			continue
		}
		// RFC 3339 timestamps compare correctly as strings.
		if f.DateFrom != "" && i.AddedAt < f.DateFrom {
			continue
		}
		if f.DateTo != "" && i.AddedAt > f.DateTo {
			continue
		}
		if f.SourceID != "" && i.SourceID != f.SourceID {
			continue
		}
		matched = append(matched, i)
	}

	if f.SortBy == SortByScore {
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].Score > matched[b].Score
		})
	} else {
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].AddedAt > matched[b].AddedAt
		})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// ContentFilters narrows a content listing. Zero values mean "no constraint";
// unlike inspiration listings there is no implicit limit, a content listing
// always returns every match.
type ContentFilters struct {
	Status ContentStatus
	Type   ContentType
	Limit  int
}

// FilterContent applies f to the given content records, newest update first.
// The input is not modified.
func FilterContent(content []Content, f ContentFilters) []Content {
	matched := make([]Content, 0, len(content))
	for _, c := range content {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].UpdatedAt > matched[b].UpdatedAt
	})

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched
}
