// Package match finds and ranks compatible study partners for a searcher,
// using their stored profile unless per-request overrides are given.
package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/studymate-labs/matchengine/internal/domain"
	"github.com/studymate-labs/matchengine/internal/domain/knowledge"
	"github.com/studymate-labs/matchengine/internal/domain/ranking"
	"github.com/studymate-labs/matchengine/internal/metrics"
)

// DefaultLimit is the number of matches returned per query.
const DefaultLimit = 50

// Overrides optionally replace the searcher's stored criteria for one query.
type Overrides struct {
	Domains   []string
	StudyTime string
	TeamPref  string
}

// Match is a candidate annotated with their compatibility score and the
// human-readable reasons behind it.
type Match struct {
	domain.Candidate
	Score   int      `json:"_match_score"`
	Reasons []string `json:"_match_reasons"`
}

// Service handles the partner matching query.
type Service struct {
	users      UserReader
	candidates CandidateLister
	limit      int
}

// New creates a partner matching service.
func New(users UserReader, candidates CandidateLister) *Service {
	return &Service{users: users, candidates: candidates, limit: DefaultLimit}
}

// WithLimit overrides the result truncation count.
func (s *Service) WithLimit(n int) *Service {
	if n > 0 {
		s.limit = n
	}
	return s
}

// FindPartners scores every other user against the searcher's effective
// criteria and returns the top matches sorted by descending score.
// Read-only; returns all results or none.
func (s *Service) FindPartners(ctx context.Context, userID string, ov Overrides) ([]Match, error) {
	if err := domain.ValidateID(userID); err != nil {
		return nil, err
	}

	searcher, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load searcher: %w", domain.ErrQueryFailed, err)
	}

	// Overrides take precedence over the stored profile.
	searchDomains := searcher.Domains
	if len(ov.Domains) > 0 {
		searchDomains = ov.Domains
	}
	searchTime := strings.ToLower(firstNonEmpty(ov.StudyTime, searcher.StudyTime))
	searchTeam := strings.ToLower(firstNonEmpty(ov.TeamPref, searcher.TeamPref))

	criteria := ranking.NewCriteria(knowledge.ExpandSearchTerms(searchDomains), searchTime, searchTeam)

	candidates, err := s.candidates.ListExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load candidates: %w", domain.ErrQueryFailed, err)
	}

	metrics.ScoredPerQuery.WithLabelValues("find_partner").Observe(float64(len(candidates)))

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		score, reasons := criteria.Score(c.Domains, c.StudyTime, c.TeamPref, c.Bio)
		matches = append(matches, Match{Candidate: c, Score: score, Reasons: reasons})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > s.limit {
		matches = matches[:s.limit]
	}

	return matches, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
