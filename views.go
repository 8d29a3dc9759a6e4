package elemental

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// Names of the built-in table partials.
const (
	ViewTable     = "table"
	ViewTableBody = "table_body"
)

// View builds the component for a partial from its data.
type View func(d ViewData) templ.Component

// ViewData is what a table partial renders from. Config is normalized.
type ViewData struct {
	Config  TableConfig
	Records []Record
	// Token is the signed config, set when the Builder has a signing key.
	Token   string
	Builder *Builder
}

// Columns returns the columns visible for ctx: developer columns are
// dropped unless developer mode is on.
func (d ViewData) Columns(ctx context.Context) []Column {
	dev := DeveloperMode(ctx)
	cols := make([]Column, 0, len(d.Config.Columns))
	for _, c := range d.Config.Columns {
		if c.Developer && !dev {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// RowID returns the id of r's row, or "" when r has no id.
func (d ViewData) RowID(r Record) string {
	if r == nil {
		return ""
	}
	id, ok := r.Field("id")
	if !ok || id == nil {
		return ""
	}
	return d.Config.Rows.IDPrefix + "-" + toString(id)
}

// RowClass returns the class of r's row.
func (d ViewData) RowClass(r Record) string {
	return d.Builder.RowClass(r, d.Config.Rows)
}

// CellClass returns the class of r's cell in col.
func (d ViewData) CellClass(r Record, col Column) string {
	return d.Builder.CellClass(r, col)
}

// Cell renders r's content for col.
func (d ViewData) Cell(ctx context.Context, col Column, r Record) (string, error) {
	return d.Builder.Cell(ctx, col, r)
}

// Views is a registry of named partials. It is the default ViewRenderer;
// hosts replace the markup of a partial with Replace.
type Views struct {
	mu    sync.RWMutex
	views map[string]View
}

// NewViews creates a registry holding the built-in "table" and
// "table_body" partials.
func NewViews() *Views {
	v := &Views{views: make(map[string]View)}
	v.Add(ViewTable, tableView)
	v.Add(ViewTableBody, tableBodyView)
	return v
}

// Add registers a partial. Panics if the name is empty or already taken.
func (v *Views) Add(name string, view View) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if name == "" || view == nil {
		panic("elemental: view needs a name and a function")
	}
	if _, exists := v.views[name]; exists {
		panic(fmt.Sprintf("elemental: view name collision for %q", name))
	}
	v.views[name] = view
}

// Replace registers a partial, overriding any existing one. Panics if the
// name is empty or view is nil.
func (v *Views) Replace(name string, view View) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if name == "" || view == nil {
		panic("elemental: view needs a name and a function")
	}
	v.views[name] = view
}

// Get returns the partial registered under name.
func (v *Views) Get(name string) (View, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	view, ok := v.views[name]
	return view, ok
}

// RenderView renders the named partial to a string.
func (v *Views) RenderView(ctx context.Context, name string, data ViewData) (string, error) {
	view, ok := v.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}
	var sb strings.Builder
	if err := view(data).Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
