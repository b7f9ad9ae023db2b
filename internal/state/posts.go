package state

import "huddle/internal/domain/models"

// AddPost prepends a post to the feed (newest-first ordering contract),
// stamping id, author and creation time when absent.
func (s *Store) AddPost(post models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = s.stampID()
	}
	if post.AuthorID == "" {
		post.AuthorID = s.actingID
	}
	if post.TeamID == "" {
		post.TeamID = s.currentTeamIDLocked()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = s.stampTime()
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	s.posts = append([]models.Post{post}, s.posts...)

	s.logger.Debug("post added", "id", post.ID, "team_id", post.TeamID)
	return post
}

// LikePost increments the like counter of the matching post by exactly
// one. There is no decrement operation. No-op if the id is absent.
func (s *Store) LikePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes++
			return
		}
	}
}

// AddComment constructs a comment stamped with the acting member and the
// current time and appends it to the matching post's comment sequence.
// Comments are append-only and chronological. No-op if the post id is
// absent.
func (s *Store) AddComment(postID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}

		comment := models.Comment{
			ID:        s.stampID(),
			PostID:    postID,
			AuthorID:  s.actingID,
			Content:   content,
			CreatedAt: s.stampTime(),
		}

		// Copy-on-append so snapshots handed out earlier never alias
		// the comment sequence we grow here.
		comments := make([]models.Comment, len(s.posts[i].Comments), len(s.posts[i].Comments)+1)
		copy(comments, s.posts[i].Comments)
		s.posts[i].Comments = append(comments, comment)
		return
	}
}

// Posts returns the feed, newest first.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}
