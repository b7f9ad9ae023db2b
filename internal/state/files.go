package state

import (
	"strings"

	"huddle/internal/domain/models"
)

// AddFile appends a file or folder to the listing, stamping id and
// modification time when absent.
func (s *Store) AddFile(file models.FileItem) models.FileItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if file.ID == "" {
		file.ID = s.stampID()
	}
	if file.Kind == "" {
		file.Kind = models.FileKindFile
	}
	if file.ModifiedAt.IsZero() {
		file.ModifiedAt = s.stampTime()
	}
	s.files = append(s.files, file)

	s.logger.Debug("file added", "id", file.ID, "name", file.Name, "path", file.Path)
	return file
}

// DeleteFile removes the matching file. Removal is idempotent: deleting
// an id twice is a no-op the second time. Children of a deleted folder
// are left in place under their now-orphaned path.
func (s *Store) DeleteFile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.files[:0]
	for _, f := range s.files {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.files = kept
}

// RenameFile replaces the name of the matching file. No-op when the id is
// absent or the new name is empty after trimming; callers are expected to
// pre-validate, this is the defensive backstop.
func (s *Store) RenameFile(id, newName string) {
	if strings.TrimSpace(newName) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == id {
			s.files[i].Name = newName
			return
		}
	}
}

// Files returns the full listing in insertion order.
func (s *Store) Files() []models.FileItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FileItem, len(s.files))
	copy(out, s.files)
	return out
}

// FilesAt returns the items whose owning path equals path, i.e. the
// children of the folder that path names ("" is the root).
func (s *Store) FilesAt(path string) []models.FileItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.FileItem
	for _, f := range s.files {
		if f.Path == path {
			out = append(out, f)
		}
	}
	return out
}
