package catalog

import (
	"time"

	"github.com/winexplorer/backend/internal/domain/item"
)

// RootID is the id of the root folder in the built-in dataset.
const RootID = "root"

// Seed returns the built-in "This PC" dataset. Every record is stamped with
// modified.
func Seed(modified time.Time) []item.Item {
	return []item.Item{
		item.NewFolder(RootID, "This PC", "", modified),

		item.NewFolder("documents", "Documents", RootID, modified),
		item.NewFolder("pictures", "Pictures", RootID, modified),
		item.NewFolder("projects", "Projects", RootID, modified),

		item.NewFolder("work_docs", "Work Documents", "documents", modified),
		item.NewFolder("personal_docs", "Personal", "documents", modified),
		item.NewFolder("vacation_pics", "Vacation 2024", "pictures", modified),
		item.NewFolder("web_projects", "Web Development", "projects", modified),
		item.NewFolder("react_app", "my-react-app", "web_projects", modified),

		item.NewFile("report_doc", "Annual Report.docx", "work_docs", 2048576, modified),
		item.NewFile("presentation", "Q4 Presentation.pptx", "work_docs", 5242880, modified),
		item.NewFile("beach_photo", "beach_sunset.jpg", "vacation_pics", 1048576, modified),
		item.NewFile("index_js", "index.js", "react_app", 1024, modified),
	}
}

// NewSeeded builds a Catalog from the built-in dataset.
func NewSeeded(modified time.Time) (*Catalog, error) {
	return New(Seed(modified))
}
