// Package table renders listing rows from an ordered column configuration.
//
// A Definition describes the columns once; Render resolves each configured
// column against every row's field map and emits tagged cells (text, image,
// actions) the client can display without knowing the entity. Any listing
// page reuses this by supplying its own Definition.
package table

import (
	"encoding/json"
	"fmt"

	"github.com/vitrinehq/vitrine/pkg/collection"
	"github.com/vitrinehq/vitrine/pkg/resource"
)

// Cell kinds.
const (
	KindText    = "text"
	KindImage   = "image"
	KindActions = "actions"
)

// Column is one ordered entry of a table configuration.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// ActionSpec configures one row action. URL builds the action target from the
// row id, so callers wire route helpers instead of format strings.
type ActionSpec struct {
	Label   string
	Icon    string
	Method  string
	Confirm string // confirmation prompt shown before dispatch; empty = none
	URL     func(id uint) string
}

// Definition is the full configuration for one listing table.
type Definition struct {
	Columns      []Column
	Actions      []ActionSpec
	EmptyMessage string
}

// Action is a rendered row action.
type Action struct {
	Label   string `json:"label"`
	Icon    string `json:"icon,omitempty"`
	URL     string `json:"url"`
	Method  string `json:"method"`
	Confirm string `json:"confirm,omitempty"`
}

// Cell is one rendered table cell, tagged by kind.
type Cell struct {
	Kind    string   `json:"kind"`
	Value   string   `json:"value,omitempty"`
	Src     string   `json:"src,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

// Row is one rendered table row.
type Row struct {
	ID    uint   `json:"id"`
	Cells []Cell `json:"cells"`
}

// Rendered is the shape sent to the client.
type Rendered struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Empty   string   `json:"empty,omitempty"`
}

// Render resolves the definition against the given row field maps. When rows
// is empty, Rows is [] and Empty carries the placeholder message.
func (d Definition) Render(rows []resource.Map) Rendered {
	out := Rendered{Columns: d.Columns, Rows: []Row{}}

	if len(rows) == 0 {
		out.Empty = d.EmptyMessage
		return out
	}

	out.Rows = collection.Map(rows, func(fields resource.Map) Row {
		id := rowID(fields)
		cells := make([]Cell, 0, len(d.Columns))
		for _, col := range d.Columns {
			cells = append(cells, d.renderCell(col, fields, id))
		}
		return Row{ID: id, Cells: cells}
	})

	return out
}

func (d Definition) renderCell(col Column, fields resource.Map, id uint) Cell {
	switch col.Kind {
	case KindImage:
		return imageCell(fields[col.Key], fields)
	case KindActions:
		return Cell{Kind: KindActions, Actions: d.renderActions(id)}
	default:
		return Cell{Kind: KindText, Value: Display(fields[col.Key])}
	}
}

func (d Definition) renderActions(id uint) []Action {
	return collection.Map(d.Actions, func(spec ActionSpec) Action {
		return Action{
			Label:   spec.Label,
			Icon:    spec.Icon,
			URL:     spec.URL(id),
			Method:  spec.Method,
			Confirm: spec.Confirm,
		}
	})
}

// imageCell renders an image reference only for a non-empty string value;
// anything else gets the "no image" placeholder.
func imageCell(v interface{}, fields resource.Map) Cell {
	src, ok := v.(string)
	if !ok || src == "" {
		return Cell{Kind: KindImage, Value: "No image"}
	}

	alt, _ := fields["name"].(string)
	return Cell{Kind: KindImage, Src: src, Alt: alt}
}

// Display coerces an arbitrary field value to its display string: strings and
// numbers pass through, booleans become Yes/No, nil becomes "-", and
// object-shaped values fall back to their JSON form.
func Display(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case *string:
		if t == nil {
			return "-"
		}
		return *t
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t)
	case float32:
		return trimFloat(float64(t))
	case float64:
		return trimFloat(t)
	case fmt.Stringer:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

func rowID(fields resource.Map) uint {
	switch t := fields["id"].(type) {
	case uint:
		return t
	case int:
		return uint(t)
	case int64:
		return uint(t)
	case uint64:
		return uint(t)
	case float64:
		return uint(t)
	default:
		return 0
	}
}
