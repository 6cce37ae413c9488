// Package recommend ranks the post catalog against a user's interest
// footprint and returns the top slice with score breakdowns.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/studymate-labs/matchengine/internal/domain"
	"github.com/studymate-labs/matchengine/internal/domain/knowledge"
	"github.com/studymate-labs/matchengine/internal/domain/ranking"
	"github.com/studymate-labs/matchengine/internal/metrics"
)

// DefaultLimit is the number of posts returned per query.
const DefaultLimit = 30

// RankedPost is a post with its author metadata reattached and its score
// breakdown exposed for observability. The total score orders the list but
// is not serialized; the breakdown is the client-visible view.
type RankedPost struct {
	ID        string            `json:"_id"`
	Author    domain.Author     `json:"author"`
	Title     string            `json:"title"`
	Summary   string            `json:"summary,omitempty"`
	Content   string            `json:"content,omitempty"`
	Tags      []string          `json:"tags"`
	Likes     []string          `json:"likes"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Score     int               `json:"-"`
	Breakdown ranking.Breakdown `json:"_score_breakdown"`
}

// Service handles the post recommendation query.
type Service struct {
	users   UserReader
	posts   PostLister
	authors AuthorReader
	limit   int
	now     func() time.Time
}

// New creates a recommendation service.
func New(users UserReader, posts PostLister, authors AuthorReader) *Service {
	return &Service{
		users:   users,
		posts:   posts,
		authors: authors,
		limit:   DefaultLimit,
		now:     time.Now,
	}
}

// WithLimit overrides the result truncation count.
func (s *Service) WithLimit(n int) *Service {
	if n > 0 {
		s.limit = n
	}
	return s
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Recommend loads the user, scores every post against their expanded
// interest set, and returns the top posts sorted by descending composite
// score. Read-only; returns all results or none.
func (s *Service) Recommend(ctx context.Context, userID string) ([]RankedPost, error) {
	if err := domain.ValidateID(userID); err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load user: %w", domain.ErrQueryFailed, err)
	}

	profile := ranking.NewProfile(user.Domains, knowledge.ExpandUserKeywords(user.Domains))

	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load posts: %w", domain.ErrQueryFailed, err)
	}

	metrics.ScoredPerQuery.WithLabelValues("recommend_posts").Observe(float64(len(posts)))

	now := s.now().UTC()
	ranked := make([]RankedPost, 0, len(posts))
	for _, p := range posts {
		relevance := profile.Relevance(p.Tags)
		total, breakdown := ranking.Composite(relevance, p.LikeCount(), p.CreatedAt, now, len(p.Tags) > 0)
		ranked = append(ranked, RankedPost{
			ID:        p.ID,
			Author:    domain.Author{ID: p.AuthorID},
			Title:     p.Title,
			Summary:   p.Summary,
			Content:   p.Content,
			Tags:      emptyIfNil(p.Tags),
			Likes:     emptyIfNil(p.Likes),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			Score:     total,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > s.limit {
		ranked = ranked[:s.limit]
	}

	if err := s.attachAuthors(ctx, ranked); err != nil {
		return nil, fmt.Errorf("%w: load authors: %w", domain.ErrQueryFailed, err)
	}

	return ranked, nil
}

// attachAuthors fetches display metadata for the authors of the retained
// posts only. Missing authors fall back to a placeholder.
func (s *Service) attachAuthors(ctx context.Context, ranked []RankedPost) error {
	seen := make(map[string]bool, len(ranked))
	ids := make([]string, 0, len(ranked))
	for _, rp := range ranked {
		if id := rp.Author.ID; id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	authors, err := s.authors.GetAuthors(ctx, ids)
	if err != nil {
		return err
	}

	for i := range ranked {
		if a, ok := authors[ranked[i].Author.ID]; ok {
			ranked[i].Author = a
		} else {
			ranked[i].Author = domain.UnknownAuthor(ranked[i].Author.ID)
		}
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
