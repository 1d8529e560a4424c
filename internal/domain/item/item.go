package item

import (
	"strings"
	"time"
)

// Kind tells files and folders apart.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindFile || k == KindFolder
}

// Item is a single file or folder in the catalog.
// ParentID is nil only for the root. Size is nil for folders.
// Children is populated only when a tree is materialized.
type Item struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Kind        Kind      `json:"type" yaml:"type"`
	ParentID    *string   `json:"parent_id" yaml:"parent_id,omitempty"`
	Size        *int64    `json:"size" yaml:"size,omitempty"`
	Modified    time.Time `json:"modified" yaml:"modified"`
	Path        string    `json:"path" yaml:"path,omitempty"`
	Children    []*Item   `json:"children,omitempty" yaml:"-"`
	HasChildren bool      `json:"has_children" yaml:"-"`
}

// Breadcrumb is the summary of one step on the root-to-item path.
type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewFolder creates a folder under parentID. An empty parentID makes a root.
func NewFolder(id, name, parentID string, modified time.Time) Item {
	return Item{
		ID:       id,
		Name:     name,
		Kind:     KindFolder,
		ParentID: optional(parentID),
		Modified: modified,
	}
}

// NewFile creates a file of the given size under parentID.
func NewFile(id, name, parentID string, size int64, modified time.Time) Item {
	return Item{
		ID:       id,
		Name:     name,
		Kind:     KindFile,
		ParentID: optional(parentID),
		Size:     &size,
		Modified: modified,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (it Item) IsFolder() bool { return it.Kind == KindFolder }
func (it Item) IsRoot() bool   { return it.ParentID == nil }

// Parent returns the parent id, or "" for the root.
func (it Item) Parent() string {
	if it.ParentID == nil {
		return ""
	}
	return *it.ParentID
}

// Crumb summarizes the item for breadcrumb navigation.
func (it Item) Crumb() Breadcrumb {
	return Breadcrumb{ID: it.ID, Name: it.Name, Path: it.Path}
}

// Clone returns a copy that shares no pointers with it.
// Children are not copied.
func (it Item) Clone() *Item {
	c := it
	c.Children = nil
	if it.ParentID != nil {
		p := *it.ParentID
		c.ParentID = &p
	}
	if it.Size != nil {
		s := *it.Size
		c.Size = &s
	}
	return &c
}

// ChildPath builds the display path of a child named name under parentPath.
func ChildPath(parentPath, name string) string {
	if parentPath == "" || parentPath == "/" {
		return "/" + name
	}
	return parentPath + "/" + name
}

// Less orders folders before files, then by name ignoring case.
// The id breaks ties so the order is total.
func Less(a, b Item) bool {
	if a.IsFolder() != b.IsFolder() {
		return a.IsFolder()
	}
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}
