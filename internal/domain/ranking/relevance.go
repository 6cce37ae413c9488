// Package ranking implements the scoring rules for post recommendation and
// partner matching. All functions are pure; each query builds its own
// Profile and discards it when the response is written.
package ranking

import (
	"sort"
	"strings"
)

// Points awarded per tag by the relevance scorer. These exact weights are
// part of the observable contract.
const (
	RawDomainPoints = 1500
	KeywordPoints   = 800
	SubstringPoints = 200
)

// Profile is a requesting user's precomputed interest footprint: the raw
// domain set and the expanded keyword set, with keywords long enough for the
// substring branch held in sorted order so scans are deterministic.
type Profile struct {
	rawDomains map[string]bool
	keywords   map[string]bool
	scanList   []string // expanded keywords with len > 2, sorted
}

// NewProfile builds a Profile from the user's raw domain list and the
// expanded keyword set produced by knowledge.ExpandUserKeywords.
func NewProfile(rawDomains []string, expanded map[string]bool) *Profile {
	raw := make(map[string]bool, len(rawDomains))
	for _, d := range rawDomains {
		raw[strings.ToLower(d)] = true
	}

	scan := make([]string, 0, len(expanded))
	for kw := range expanded {
		if len(kw) > 2 {
			scan = append(scan, kw)
		}
	}
	sort.Strings(scan)

	return &Profile{rawDomains: raw, keywords: expanded, scanList: scan}
}

// Relevance scores a post's tag list against the profile. Per tag
// (lowercased and trimmed): an exact raw-domain match earns RawDomainPoints,
// else an expanded-keyword match earns KeywordPoints, else the first
// substring hit between the tag and any expanded keyword (both longer than
// 2 characters) earns SubstringPoints. Points accumulate over all tags; a
// tag scores at most once.
func (p *Profile) Relevance(tags []string) int {
	score := 0
	for _, tag := range tags {
		clean := strings.ToLower(strings.TrimSpace(tag))
		if p.rawDomains[clean] {
			score += RawDomainPoints
			continue
		}
		if p.keywords[clean] {
			score += KeywordPoints
			continue
		}
		if len(clean) <= 2 {
			continue
		}
		for _, kw := range p.scanList {
			if strings.Contains(clean, kw) || strings.Contains(kw, clean) {
				score += SubstringPoints
				break
			}
		}
	}
	return score
}
