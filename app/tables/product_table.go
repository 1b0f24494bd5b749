// Package tables holds the column/action configurations of the listing
// screens. Adding a new listing means adding a Definition here, not writing
// another renderer.
package tables

import (
	"github.com/vitrinehq/vitrine/app/urls"
	"github.com/vitrinehq/vitrine/pkg/table"
)

// Product returns the table configuration of the product listing.
func Product() table.Definition {
	return table.Definition{
		Columns: []table.Column{
			{Key: "id", Label: "ID", Kind: table.KindText},
			{Key: "featured_image_url", Label: "Image", Kind: table.KindImage},
			{Key: "name", Label: "Name", Kind: table.KindText},
			{Key: "description", Label: "Description", Kind: table.KindText},
			{Key: "price", Label: "Price", Kind: table.KindText},
			{Key: "created_at", Label: "Created Date", Kind: table.KindText},
			{Key: "actions", Label: "Actions", Kind: table.KindActions},
		},
		Actions: []table.ActionSpec{
			{
				Label:  "Show",
				Icon:   "eye",
				Method: "GET",
				URL:    urls.Show,
			},
			{
				Label:  "Edit",
				Icon:   "pencil",
				Method: "GET",
				URL:    urls.Edit,
			},
			{
				Label:   "Delete",
				Icon:    "trash",
				Method:  "DELETE",
				Confirm: "Are you sure you want to delete this product?",
				URL:     func(id uint) string { return urls.DeleteRequest(id).URL },
			},
		},
		EmptyMessage: "No products found.",
	}
}
