package knowledge

import "strings"

// ExpandUserKeywords builds a user's interest footprint from their raw
// domain list: each entry lowercased and trimmed, plus every keyword of any
// entry that names a broad domain. Every cleaned entry lands in the set,
// including ones that trim to the empty string. Empty input yields an
// empty set.
func ExpandUserKeywords(domains []string) map[string]bool {
	expanded := make(map[string]bool, len(domains))
	for _, d := range domains {
		clean := strings.ToLower(strings.TrimSpace(d))
		expanded[clean] = true
		if kws, ok := KeywordsOf(clean); ok {
			for _, kw := range kws {
				expanded[kw] = true
			}
		}
	}
	return expanded
}

// ExpandSearchTerms builds a searcher's target-skill set from query strings.
// Like ExpandUserKeywords, but additionally walks the reverse direction: a
// query matching a keyword nested under some domain pulls in that domain's
// name. Returns the terms as a deduplicated list; order is not meaningful.
func ExpandSearchTerms(queries []string) []string {
	expanded := make(map[string]bool, len(queries))
	for _, q := range queries {
		clean := strings.ToLower(strings.TrimSpace(q))
		expanded[clean] = true
		if kws, ok := KeywordsOf(clean); ok {
			for _, kw := range kws {
				expanded[kw] = true
			}
		}
		for _, name := range DomainsContaining(clean) {
			expanded[name] = true
		}
	}

	terms := make([]string, 0, len(expanded))
	for term := range expanded {
		terms = append(terms, term)
	}
	return terms
}
