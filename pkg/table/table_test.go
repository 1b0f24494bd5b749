package table_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/pkg/resource"
	"github.com/vitrinehq/vitrine/pkg/table"
)

func testDefinition() table.Definition {
	return table.Definition{
		Columns: []table.Column{
			{Key: "name", Label: "Name", Kind: table.KindText},
			{Key: "photo", Label: "Photo", Kind: table.KindImage},
			{Key: "actions", Label: "Actions", Kind: table.KindActions},
		},
		Actions: []table.ActionSpec{
			{
				Label:   "Delete",
				Method:  "DELETE",
				Confirm: "Sure?",
				URL:     func(id uint) string { return fmt.Sprintf("/items/%d", id) },
			},
		},
		EmptyMessage: "No records found.",
	}
}

func TestRenderEmptyDataSet(t *testing.T) {
	out := testDefinition().Render(nil)

	assert.Empty(t, out.Rows)
	assert.Equal(t, "No records found.", out.Empty)
	assert.Len(t, out.Columns, 3)
}

func TestRenderRowsAndActions(t *testing.T) {
	rows := []resource.Map{
		{"id": uint(7), "name": "Lamp", "photo": "http://x/lamp.png"},
	}

	out := testDefinition().Render(rows)
	require.Len(t, out.Rows, 1)
	assert.Empty(t, out.Empty)

	row := out.Rows[0]
	assert.EqualValues(t, 7, row.ID)
	require.Len(t, row.Cells, 3)

	assert.Equal(t, table.KindText, row.Cells[0].Kind)
	assert.Equal(t, "Lamp", row.Cells[0].Value)

	assert.Equal(t, table.KindImage, row.Cells[1].Kind)
	assert.Equal(t, "http://x/lamp.png", row.Cells[1].Src)

	require.Len(t, row.Cells[2].Actions, 1)
	action := row.Cells[2].Actions[0]
	assert.Equal(t, "Delete", action.Label)
	assert.Equal(t, "DELETE", action.Method)
	assert.Equal(t, "/items/7", action.URL)
	assert.Equal(t, "Sure?", action.Confirm)
}

func TestImageCellPlaceholderWhenEmpty(t *testing.T) {
	def := testDefinition()

	for _, v := range []interface{}{nil, "", 42} {
		out := def.Render([]resource.Map{{"id": uint(1), "name": "x", "photo": v}})
		cell := out.Rows[0].Cells[1]
		assert.Equal(t, table.KindImage, cell.Kind)
		assert.Empty(t, cell.Src, "value %v", v)
		assert.Equal(t, "No image", cell.Value, "value %v", v)
	}
}

func TestDisplayCoercion(t *testing.T) {
	s := "ptr"
	var nilPtr *string

	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, "-"},
		{"hello", "hello"},
		{&s, "ptr"},
		{nilPtr, "-"},
		{true, "Yes"},
		{false, "No"},
		{42, "42"},
		{uint(7), "7"},
		{3.0, "3"},
		{9.99, "9.99"},
		{map[string]interface{}{"a": 1}, `{"a":1}`},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, table.Display(c.in), "input %#v", c.in)
	}
}
