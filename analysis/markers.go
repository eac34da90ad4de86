// Package analysis computes derived tables from the parsed record set:
// per-sender counts, media markers, hourly activity, call patterns and
// response latency. Records are read only, results are fresh values.
package analysis

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Media markers the export substitutes for attachments.
const (
	MarkerImage   = "image omitted"
	MarkerSticker = "sticker omitted"
)

// MarkerMatcher finds media markers inside message bodies,
// case-insensitively, with a single automaton pass per body.
type MarkerMatcher struct {
	matcher *goahocorasick.Machine
}

func NewMarkerMatcher(markers []string) (*MarkerMatcher, error) {
	patterns := make([][]rune, len(markers))
	for i, marker := range markers {
		patterns[i] = []rune(strings.ToLower(marker))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &MarkerMatcher{matcher: m}, nil
}

// Match reports every distinct marker present in the body, lower-cased.
func (m *MarkerMatcher) Match(body string) []string {
	lowered := []rune(strings.ToLower(body))
	terms := m.matcher.MultiPatternSearch(lowered, false)
	if len(terms) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(terms))
	found := make([]string, 0, len(terms))
	for _, term := range terms {
		word := string(term.Word)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		found = append(found, word)
	}
	return found
}
