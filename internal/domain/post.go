package domain

import "time"

// Post is a post record as stored. Owned by the post-management subsystem;
// read-only to the match engine. Likes hold liker user IDs.
type Post struct {
	ID        string    `json:"_id"`
	AuthorID  string    `json:"author"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content,omitempty"`
	Tags      []string  `json:"tags"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// LikeCount returns the number of likers.
func (p *Post) LikeCount() int { return len(p.Likes) }
