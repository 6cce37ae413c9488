package match

import (
	"context"

	"github.com/studymate-labs/matchengine/internal/domain"
)

// UserReader loads the searcher's profile.
type UserReader interface {
	Get(ctx context.Context, id string) (domain.User, error)
}

// CandidateLister loads every other user, with sensitive fields projected out.
type CandidateLister interface {
	ListExcept(ctx context.Context, excludeID string) ([]domain.Candidate, error)
}
