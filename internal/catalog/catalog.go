// Package catalog holds the immutable set of file and folder records served
// by the API. A Catalog is validated and indexed once by New and is safe for
// concurrent readers afterwards; it exposes no mutation.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/winexplorer/backend/internal/domain/item"
)

var (
	ErrInvalidItem     = errors.New("invalid item")
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrDanglingParent  = errors.New("parent does not exist")
	ErrNoRoot          = errors.New("catalog has no root")
	ErrMultipleRoots   = errors.New("catalog has more than one root")
	ErrCycle           = errors.New("parent chain contains a cycle")
	ErrFileHasChildren = errors.New("file cannot have children")
)

// Catalog is a read-only, validated tree of items with a parent → children
// index built at load time.
type Catalog struct {
	items    map[string]item.Item
	children map[string][]string // parent id → ordered child ids
	order    []string            // all ids ordered by path
	rootID   string
}

// New validates items and builds a Catalog from them.
// Path and HasChildren are derived from the parent links; any values
// present in items are ignored.
func New(items []item.Item) (*Catalog, error) {
	c := &Catalog{
		items:    make(map[string]item.Item, len(items)),
		children: make(map[string][]string),
	}

	for _, it := range items {
		if err := checkItem(it); err != nil {
			return nil, err
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		stored := *it.Clone()
		stored.Path = ""
		stored.HasChildren = false
		c.items[it.ID] = stored
	}

	for _, it := range c.items {
		if it.IsRoot() {
			if c.rootID != "" {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleRoots, c.rootID, it.ID)
			}
			c.rootID = it.ID
			continue
		}
		parent, ok := c.items[it.Parent()]
		if !ok {
			return nil, fmt.Errorf("%w: %q references %q", ErrDanglingParent, it.ID, it.Parent())
		}
		if !parent.IsFolder() {
			return nil, fmt.Errorf("%w: %q is under file %q", ErrFileHasChildren, it.ID, parent.ID)
		}
		c.children[parent.ID] = append(c.children[parent.ID], it.ID)
	}
	if c.rootID == "" {
		return nil, ErrNoRoot
	}

	for parentID, ids := range c.children {
		sort.Slice(ids, func(i, j int) bool {
			return item.Less(c.items[ids[i]], c.items[ids[j]])
		})
		parent := c.items[parentID]
		parent.HasChildren = true
		c.items[parentID] = parent
	}

	if err := c.derivePaths(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkItem(it item.Item) error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	case it.Name == "":
		return fmt.Errorf("%w: %q has no name", ErrInvalidItem, it.ID)
	case !it.Kind.Valid():
		return fmt.Errorf("%w: %q has unknown type %q", ErrInvalidItem, it.ID, it.Kind)
	case it.IsFolder() && it.Size != nil:
		return fmt.Errorf("%w: folder %q has a size", ErrInvalidItem, it.ID)
	case !it.IsFolder() && (it.Size == nil || *it.Size < 0):
		return fmt.Errorf("%w: file %q needs a non-negative size", ErrInvalidItem, it.ID)
	case it.ParentID != nil && *it.ParentID == it.ID:
		return fmt.Errorf("%w: %q is its own parent", ErrCycle, it.ID)
	}
	return nil
}

// derivePaths walks the tree breadth-first from the root. Any item it cannot
// reach hangs off a cycle that is disconnected from the root.
func (c *Catalog) derivePaths() error {
	root := c.items[c.rootID]
	root.Path = "/"
	c.items[c.rootID] = root

	c.order = make([]string, 0, len(c.items))
	queue := []string{c.rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		c.order = append(c.order, id)
		parentPath := c.items[id].Path
		for _, childID := range c.children[id] {
			child := c.items[childID]
			child.Path = item.ChildPath(parentPath, child.Name)
			c.items[childID] = child
			queue = append(queue, childID)
		}
	}

	if len(c.order) != len(c.items) {
		for id := range c.items {
			if c.items[id].Path == "" {
				return fmt.Errorf("%w: %q is unreachable from root %q", ErrCycle, id, c.rootID)
			}
		}
	}

	sort.SliceStable(c.order, func(i, j int) bool {
		return c.items[c.order[i]].Path < c.items[c.order[j]].Path
	})
	return nil
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (item.Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return item.Item{}, false
	}
	return *it.Clone(), true
}

// All returns every item ordered by path.
func (c *Catalog) All() []item.Item {
	out := make([]item.Item, len(c.order))
	for i, id := range c.order {
		out[i] = *c.items[id].Clone()
	}
	return out
}

// ChildIDs returns the ids of parentID's direct children, folders first then
// by name. The returned slice is a copy.
func (c *Catalog) ChildIDs(parentID string) []string {
	ids := c.children[parentID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Root returns the root item.
func (c *Catalog) Root() item.Item {
	return *c.items[c.rootID].Clone()
}

func (c *Catalog) Len() int { return len(c.items) }
