package urls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitrinehq/vitrine/app/urls"
)

func TestListOmitsDefaults(t *testing.T) {
	assert.Equal(t, "/products", urls.List(urls.ListFilters{}))
	assert.Equal(t, "/products", urls.List(urls.ListFilters{Page: 1}))
}

func TestListEncodesFilters(t *testing.T) {
	got := urls.List(urls.ListFilters{Search: "brass lamp", PerPage: 10, Page: 2})
	assert.Equal(t, "/products?page=2&perPage=10&search=brass+lamp", got)
}

func TestResourceTargets(t *testing.T) {
	assert.Equal(t, "/products/7", urls.Show(7))
	assert.Equal(t, "/products/7/edit", urls.Edit(7))
	assert.Equal(t, "/products/create", urls.Create())

	assert.Equal(t, urls.Request{Method: "POST", URL: "/products"}, urls.StoreRequest())
	assert.Equal(t, urls.Request{Method: "PUT", URL: "/products/7"}, urls.UpdateRequest(7))
	assert.Equal(t, urls.Request{Method: "DELETE", URL: "/products/7"}, urls.DeleteRequest(7))
}
