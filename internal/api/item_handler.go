package api

import (
	"net/http"

	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/domain/item"
)

// ── Response types ──────────────────────────────────────────────────────────

// FolderContentsResponse is a folder together with its direct children.
type FolderContentsResponse struct {
	Folder   item.Item   `json:"folder"`
	Children []item.Item `json:"children"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Windows Explorer API is running"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getFolder returns a folder and its children.
// @Summary      Get folder contents
// @Description  Returns the folder and its direct children, folders first then by name.
// @Tags         Folders
// @Produce      json
// @Param        folderID  path      string  true  "Folder ID"
// @Success      200       {object}  FolderContentsResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /api/folders/{folderID} [get]
func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	folderID := r.PathValue("folderID")

	folder, children, err := h.explorer.FolderContents(folderID)
	if h.handleServiceError(w, err, "Folder") {
		return
	}

	respondJSON(w, http.StatusOK, FolderContentsResponse{
		Folder:   folder,
		Children: children,
	})
}

// getTree returns the whole hierarchy below the root.
// @Summary      Get folder tree
// @Description  Returns the root's children with nested children for every non-empty folder.
// @Tags         Tree
// @Produce      json
// @Success      200  {array}  item.Item
// @Router       /api/tree [get]
func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.explorer.Tree(catalog.RootID))
}

// getBreadcrumbs returns the root-to-item path.
// @Summary      Get breadcrumbs
// @Description  Returns the path from the root to the item. Unknown ids give an empty list.
// @Tags         Navigation
// @Produce      json
// @Param        itemID  path   string  true  "Item ID"
// @Success      200     {array}  item.Breadcrumb
// @Router       /api/breadcrumbs/{itemID} [get]
func (h *Handler) getBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.explorer.Breadcrumbs(r.PathValue("itemID")))
}

// search finds items by name.
// @Summary      Search items
// @Description  Case-insensitive substring match on item names. An empty query returns everything.
// @Tags         Search
// @Produce      json
// @Param        query  path   string  true  "Search text"
// @Success      200    {array}  item.Item
// @Router       /api/search/{query} [get]
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")
	results := h.explorer.Search(query)
	h.logger.Debug("search", "query", query, "results", len(results))
	respondJSON(w, http.StatusOK, results)
}

// health reports liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Windows Explorer API is running",
	})
}
