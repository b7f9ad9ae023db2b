package models

import "time"

// Post is a team feed entry. Likes only ever increase (there is no
// unlike operation) and comments are append-only in chronological order.
// The comment count is always len(Comments), never stored redundantly.
type Post struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// Comment is immutable once created and append-only within its post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
