// Package user persists and loads user records as JSON documents.
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studymate-labs/matchengine/internal/db"
	"github.com/studymate-labs/matchengine/internal/domain"
)

// store is the consumer interface for user documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the user reader contracts of the query services.
type Repo struct {
	store  store
	prefix string
}

// New creates a user repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Get returns a user by ID. Returns domain.ErrUserNotFound when missing.
func (r *Repo) Get(ctx context.Context, id string) (domain.User, error) {
	raw, err := r.store.JSONGet(ctx, r.key(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("json.get %s: %w", r.key(id), err)
	}

	u, err := parseOne[domain.User](raw)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse user %s: %w", id, err)
	}
	if u.ID == "" {
		u.ID = id
	}
	return u, nil
}

// ListExcept returns every user except excludeID, projected to Candidate
// (password and email are not part of the projection).
func (r *Repo) ListExcept(ctx context.Context, excludeID string) ([]domain.Candidate, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"user:*")
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	fetch := keys[:0]
	for _, k := range keys {
		if k != r.key(excludeID) {
			fetch = append(fetch, k)
		}
	}

	raws, err := r.store.JSONGetMulti(ctx, fetch, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get users: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue // deleted between SCAN and fetch
		}
		c, err := parseOne[domain.Candidate](raw)
		if err != nil {
			return nil, fmt.Errorf("parse user %s: %w", fetch[i], err)
		}
		if c.ID == "" {
			c.ID = idFromKey(fetch[i], r.prefix)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// GetAuthors returns display metadata for the given user IDs, keyed by ID.
// Missing users are simply absent from the map.
func (r *Repo) GetAuthors(ctx context.Context, ids []string) (map[string]domain.Author, error) {
	if len(ids) == 0 {
		return map[string]domain.Author{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get authors: %w", err)
	}

	authors := make(map[string]domain.Author, len(ids))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		u, err := parseOne[domain.User](raw)
		if err != nil {
			return nil, fmt.Errorf("parse author %s: %w", ids[i], err)
		}
		authors[ids[i]] = domain.Author{ID: ids[i], Name: u.Name, AvatarID: u.AvatarID}
	}
	return authors, nil
}

// Put stores a full user record. Used by the seeder.
func (r *Repo) Put(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := r.store.JSONSet(ctx, r.key(u.ID), "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", r.key(u.ID), err)
	}
	return nil
}

func (r *Repo) key(id string) string {
	return r.prefix + "user:" + id
}

func idFromKey(key, prefix string) string {
	return key[len(prefix)+len("user:"):]
}

// parseOne unwraps a JSONPath "$" result (an array with one element).
func parseOne[T any](raw []byte) (T, error) {
	var items []T
	var zero T
	if err := json.Unmarshal(raw, &items); err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("empty json result")
	}
	return items[0], nil
}
