// Package templates holds the templ components that render the viewer's HTML.
//
// The .templ files are the source; the *_templ.go files next to them are
// produced by `templ generate` and committed. Cell content is interpolated
// with { }, so it is always escaped and displayed as text.
package templates

import (
	"fmt"

	"github.com/JonMunkholm/csvview/internal/core"
)

// TableClass is the class list of the rendered table.
const TableClass = "table table-striped table-bordered table-hover align-middle"

// PageParams is everything the main page shows.
type PageParams struct {
	// View is the restored CSV, or nil when nothing is stored.
	View *core.View
	// Notice is an informational banner, such as after clearing.
	Notice string
	// MaxFileSize is shown next to the upload form.
	MaxFileSize int64
}

func viewSummary(v *core.View) string {
	return fmt.Sprintf("%d rows, %s-separated", len(v.Rows), v.Delimiter.Name())
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
