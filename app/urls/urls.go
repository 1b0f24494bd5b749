// Package urls builds the application's request targets. Every operation has
// a typed builder, so callers never assemble paths or query strings by hand.
package urls

import (
	"net/url"
	"strconv"

	"github.com/vitrinehq/vitrine/pkg/orm"
)

const productsBase = "/products"

// ListFilters are the query parameters of the product listing.
type ListFilters struct {
	Search  string
	PerPage int
	Page    int
}

// Query renders the filters as url.Values, omitting zero values. Page 1 is
// also omitted since it is the default.
func (f ListFilters) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.PerPage != 0 {
		q.Set("perPage", strconv.Itoa(f.PerPage))
	}
	if f.Page > 1 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}

// List returns the listing URL for the given filters.
func List(f ListFilters) string {
	q := f.Query()
	if len(q) == 0 {
		return productsBase
	}
	return productsBase + "?" + q.Encode()
}

// Create returns the blank-form URL.
func Create() string { return productsBase + "/create" }

// Show returns the view URL for one product.
func Show(id uint) string { return productsBase + "/" + itoa(id) }

// Edit returns the edit-form URL for one product.
func Edit(id uint) string { return Show(id) + "/edit" }

// Request pairs a method with its target URL for mutation endpoints.
type Request struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// StoreRequest is the create-product submission target.
func StoreRequest() Request { return Request{Method: "POST", URL: productsBase} }

// UpdateRequest is the update submission target for one product.
func UpdateRequest(id uint) Request { return Request{Method: "PUT", URL: Show(id)} }

// DeleteRequest is the delete target for one product.
func DeleteRequest(id uint) Request { return Request{Method: "DELETE", URL: Show(id)} }

// PerPageAll re-exports the "show everything" page-size sentinel so clients
// building filter URLs do not import the orm package.
const PerPageAll = orm.PerPageAll

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
