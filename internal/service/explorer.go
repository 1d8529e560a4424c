// internal/service/explorer.go
package service

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/domain/item"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNotAFolder = errors.New("item is not a folder")
)

// ExplorerService answers navigation queries over a Catalog.
// It owns no state of its own, so one instance serves every request.
type ExplorerService struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewExplorerService creates an ExplorerService.
func NewExplorerService(c *catalog.Catalog, logger *slog.Logger) *ExplorerService {
	return &ExplorerService{
		catalog: c,
		logger:  logger,
	}
}

// ChildrenOf returns the direct children of parentID, folders first then by
// name ignoring case. An unknown parent yields an empty slice.
func (s *ExplorerService) ChildrenOf(parentID string) []item.Item {
	ids := s.catalog.ChildIDs(parentID)
	out := make([]item.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := s.catalog.Get(id); ok {
			out = append(out, it)
		}
	}
	return out
}

// FolderContents returns the folder with the given id and its children.
func (s *ExplorerService) FolderContents(id string) (item.Item, []item.Item, error) {
	folder, ok := s.catalog.Get(id)
	if !ok {
		return item.Item{}, nil, ErrNotFound
	}
	if !folder.IsFolder() {
		return item.Item{}, nil, ErrNotAFolder
	}
	return folder, s.ChildrenOf(id), nil
}

// Tree materializes the hierarchy below rootID. Only folders that have
// children get a Children slice.
func (s *ExplorerService) Tree(rootID string) []*item.Item {
	children := s.ChildrenOf(rootID)
	out := make([]*item.Item, len(children))
	for i, child := range children {
		node := child.Clone()
		if node.IsFolder() && node.HasChildren {
			node.Children = s.Tree(node.ID)
		}
		out[i] = node
	}
	return out
}

// Breadcrumbs returns the path from the root down to itemID. The walk stops
// quietly at a missing parent and keeps what it collected so far.
func (s *ExplorerService) Breadcrumbs(itemID string) []item.Breadcrumb {
	var crumbs []item.Breadcrumb
	for current := itemID; current != ""; {
		it, ok := s.catalog.Get(current)
		if !ok {
			if len(crumbs) > 0 {
				s.logger.Warn("breadcrumb chain broken", "item_id", itemID, "missing", current)
			}
			break
		}
		crumbs = append(crumbs, it.Crumb())
		current = it.Parent()
	}

	for i, j := 0, len(crumbs)-1; i < j; i, j = i+1, j-1 {
		crumbs[i], crumbs[j] = crumbs[j], crumbs[i]
	}
	if crumbs == nil {
		crumbs = []item.Breadcrumb{}
	}
	return crumbs
}

// Search returns every item whose name contains query, ignoring case.
// An empty query matches everything.
func (s *ExplorerService) Search(query string) []item.Item {
	q := strings.ToLower(query)
	results := []item.Item{}
	for _, it := range s.catalog.All() {
		if strings.Contains(strings.ToLower(it.Name), q) {
			results = append(results, it)
		}
	}
	sort.Slice(results, func(i, j int) bool { return item.Less(results[i], results[j]) })
	return results
}

// Size is the number of items in the underlying catalog.
func (s *ExplorerService) Size() int {
	return s.catalog.Len()
}
