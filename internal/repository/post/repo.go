// Package post loads post records as JSON documents.
package post

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studymate-labs/matchengine/internal/domain"
)

// store is the consumer interface for post documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the post lister contract of the recommendation service.
type Repo struct {
	store  store
	prefix string
}

// New creates a post repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// ListAll returns every post in the system. The catalog is assumed small
// enough to rank in memory per request.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Post, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"post:*")
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue // deleted between SCAN and fetch
		}
		var items []domain.Post
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("parse post %s: %w", keys[i], err)
		}
		if len(items) == 0 {
			continue
		}
		p := items[0]
		if p.ID == "" {
			p.ID = strings.TrimPrefix(keys[i], r.prefix+"post:")
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Put stores a full post record. Used by the seeder.
func (r *Repo) Put(ctx context.Context, p domain.Post) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}
	key := r.prefix + "post:" + p.ID
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}
