package recommend

import (
	"context"

	"github.com/studymate-labs/matchengine/internal/domain"
)

// UserReader loads the requesting user's profile.
type UserReader interface {
	Get(ctx context.Context, id string) (domain.User, error)
}

// PostLister loads the full post catalog.
type PostLister interface {
	ListAll(ctx context.Context) ([]domain.Post, error)
}

// AuthorReader loads display metadata for post authors.
type AuthorReader interface {
	GetAuthors(ctx context.Context, ids []string) (map[string]domain.Author, error)
}
