package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/app/routes"
	"github.com/vitrinehq/vitrine/pkg/router"
	"github.com/vitrinehq/vitrine/pkg/testkit"
)

func newHandler() http.Handler {
	r := router.New()
	routes.Register(r)
	return r.Handler()
}

func TestIndexPaginatesTwelveProducts(t *testing.T) {
	db := testkit.SetupDB(t)
	testkit.SeedProducts(t, db, 12)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products?perPage=5&page=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.DecodeJSON(t, rec)
	data := body["data"].(map[string]interface{})
	products := data["products"].(map[string]interface{})

	assert.Len(t, products["data"], 2)
	assert.EqualValues(t, 11, products["from"])
	assert.EqualValues(t, 12, products["to"])
	assert.EqualValues(t, 12, products["total"])
	assert.EqualValues(t, 12, data["totalCount"])
	assert.EqualValues(t, 12, data["filteredCount"])
}

func TestIndexRendersTableConfig(t *testing.T) {
	db := testkit.SetupDB(t)
	testkit.SeedProducts(t, db, 2)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.DecodeJSON(t, rec)
	data := body["data"].(map[string]interface{})
	tbl := data["table"].(map[string]interface{})

	columns := tbl["columns"].([]interface{})
	require.NotEmpty(t, columns)
	rows := tbl["rows"].([]interface{})
	assert.Len(t, rows, 2)

	// Every row carries one cell per column.
	first := rows[0].(map[string]interface{})
	assert.Len(t, first["cells"], len(columns))
}

func TestIndexEmptyStore(t *testing.T) {
	testkit.SetupDB(t)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.DecodeJSON(t, rec)
	data := body["data"].(map[string]interface{})
	products := data["products"].(map[string]interface{})

	assert.Empty(t, products["data"])
	assert.EqualValues(t, 0, products["total"])

	tbl := data["table"].(map[string]interface{})
	assert.Equal(t, "No products found.", tbl["empty"])
}

func TestIndexLinksPreserveSearchAndPerPage(t *testing.T) {
	db := testkit.SetupDB(t)
	testkit.SeedProducts(t, db, 12)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products?search=Product&perPage=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := testkit.DecodeJSON(t, rec)
	data := body["data"].(map[string]interface{})
	products := data["products"].(map[string]interface{})
	links := products["links"].([]interface{})
	require.NotEmpty(t, links)

	sawURL := false
	for _, l := range links {
		link := l.(map[string]interface{})
		url, ok := link["url"].(string)
		if !ok {
			continue // disabled or ellipsis entry
		}
		sawURL = true
		assert.Contains(t, url, "search=Product")
		assert.Contains(t, url, "perPage=5")
	}
	assert.True(t, sawURL, "expected at least one enabled link")
}

func TestStoreCreateSearchRoundTrip(t *testing.T) {
	testkit.SetupDB(t)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodPost, "/products", map[string]string{
		"name":        "Widget",
		"description": "A test widget",
		"price":       "9.99",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := testkit.DecodeJSON(t, rec)
	created := body["data"].(map[string]interface{})
	assert.Equal(t, "Widget", created["name"])
	assert.Nil(t, created["featured_image"])

	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "success", notice["kind"])
	assert.Equal(t, "Product created successfully.", notice["message"])

	// Matching search includes the record.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/products?search=widget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := testkit.DecodeJSON(t, rec)["data"].(map[string]interface{})
	products := data["products"].(map[string]interface{})
	assert.Len(t, products["data"], 1)

	// Non-matching search excludes it.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/products?search=gadget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = testkit.DecodeJSON(t, rec)["data"].(map[string]interface{})
	products = data["products"].(map[string]interface{})
	assert.Empty(t, products["data"])
}

func TestStoreValidationErrors(t *testing.T) {
	testkit.SetupDB(t)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodPost, "/products", map[string]string{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := testkit.DecodeJSON(t, rec)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "price")

	// Nothing was written.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/products", nil)
	data := testkit.DecodeJSON(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["totalCount"])
}

func TestShowAndEdit(t *testing.T) {
	db := testkit.SetupDB(t)
	seeded := testkit.SeedProducts(t, db, 1)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := testkit.DecodeJSON(t, rec)
	product := body["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, seeded[0].Name, product["name"])

	rec = testkit.DoJSON(t, h, http.MethodGet, "/products/1/edit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = testkit.DecodeJSON(t, rec)
	submit := body["data"].(map[string]interface{})["submit"].(map[string]interface{})
	assert.Equal(t, "PUT", submit["method"])
	assert.Equal(t, "/products/1", submit["url"])
}

func TestShowMissingProduct(t *testing.T) {
	testkit.SetupDB(t)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOverwritesFields(t *testing.T) {
	db := testkit.SetupDB(t)
	testkit.SeedProducts(t, db, 1)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodPut, "/products/1", map[string]string{
		"name":        "Renamed",
		"description": "Updated description",
		"price":       "15.00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := testkit.DecodeJSON(t, rec)
	updated := body["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", updated["name"])
	assert.Equal(t, "15.00", updated["price"])

	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, "success", notice["kind"])
}

func TestDestroyThenNotFound(t *testing.T) {
	db := testkit.SetupDB(t)
	seeded := testkit.SeedProducts(t, db, 2)
	h := newHandler()

	rec := testkit.DoJSON(t, h, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notice := testkit.DecodeJSON(t, rec)["notice"].(map[string]interface{})
	assert.Equal(t, "success", notice["kind"])

	// The listing never includes the deleted id again.
	rec = testkit.DoJSON(t, h, http.MethodGet, "/products", nil)
	data := testkit.DecodeJSON(t, rec)["data"].(map[string]interface{})
	products := data["products"].(map[string]interface{})
	for _, item := range products["data"].([]interface{}) {
		row := item.(map[string]interface{})
		assert.NotEqualValues(t, seeded[0].ID, row["id"])
	}

	// Deleting a missing id is a not-found signal, not a success.
	rec = testkit.DoJSON(t, h, http.MethodDelete, "/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
