package models

import "time"

// FileKind distinguishes regular files from folders.
type FileKind string

const (
	FileKindFile   FileKind = "file"
	FileKindFolder FileKind = "folder"
)

// FileItem is a file or folder in the team's flat, path-keyed listing.
// Path is the owning directory as "/"-joined segments ("" is the root);
// a folder's children are the items whose Path equals the folder's own
// Path plus its Name.
type FileItem struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Kind       FileKind  `json:"kind" yaml:"kind"`
	Size       int64     `json:"size,omitempty" yaml:"size,omitempty"` // bytes, files only
	ModifiedAt time.Time `json:"modified_at" yaml:"modified_at"`
	Path       string    `json:"path" yaml:"path"`
}

// ChildPath returns the path under which a folder's children live.
func (f FileItem) ChildPath() string {
	if f.Path == "" {
		return f.Name
	}
	return f.Path + "/" + f.Name
}
