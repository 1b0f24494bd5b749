// Package resource provides typed API resource transformers.
//
// Define a Resource to control exactly what JSON shape the API returns:
//
//	type ProductResource struct{}
//	func (ProductResource) ToArray(p models.Product) resource.Map {
//	    return resource.Map{"id": p.ID, "name": p.Name}
//	}
//
// Respond:
//
//	resource.One(ProductResource{}, product).Respond(w)
//	resource.Many(ProductResource{}, products).Respond(w)
package resource

import (
	"encoding/json"
	"net/http"

	"github.com/vitrinehq/vitrine/pkg/collection"
	"github.com/vitrinehq/vitrine/pkg/orm"
)

// Map is a convenient alias for the output of ToArray.
type Map = map[string]interface{}

// Transformer converts one model instance into its API shape.
type Transformer[T any] interface {
	ToArray(v T) Map
}

// ------------------- Single resource -------------------

// Resource wraps a single model with its transformer.
type Resource[T any] struct {
	transformer Transformer[T]
	data        T
	meta        Map
}

// One creates a Resource for a single model instance.
func One[T any](t Transformer[T], data T) *Resource[T] {
	return &Resource[T]{transformer: t, data: data}
}

// WithMeta attaches additional metadata to the response envelope.
func (r *Resource[T]) WithMeta(meta Map) *Resource[T] {
	r.meta = meta
	return r
}

// MarshalJSON implements json.Marshaler so a Resource can be nested.
func (r *Resource[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.transformer.ToArray(r.data))
}

// Respond writes the resource as JSON with status 200.
func (r *Resource[T]) Respond(w http.ResponseWriter) {
	out := Map{"data": r.transformer.ToArray(r.data)}
	if r.meta != nil {
		out["meta"] = r.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Collection resource -------------------

// Collection wraps a slice of models with a transformer.
type Collection[T any] struct {
	transformer Transformer[T]
	items       []T
	pagination  *orm.Pagination
	meta        Map
}

// Many creates a Collection from a slice of models.
func Many[T any](t Transformer[T], items []T) *Collection[T] {
	return &Collection[T]{transformer: t, items: items}
}

// WithPagination attaches pagination metadata.
func (c *Collection[T]) WithPagination(p orm.Pagination) *Collection[T] {
	c.pagination = &p
	return c
}

// WithMeta attaches extra metadata.
func (c *Collection[T]) WithMeta(meta Map) *Collection[T] {
	c.meta = meta
	return c
}

// Transform returns the transformed items. Always non-nil so an empty
// collection serializes as [] rather than null.
func (c *Collection[T]) Transform() []Map {
	out := collection.Map(c.items, c.transformer.ToArray)
	if out == nil {
		out = []Map{}
	}
	return out
}

// MarshalJSON implements json.Marshaler so a Collection can be nested.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Transform())
}

// Respond writes the collection as JSON with status 200.
func (c *Collection[T]) Respond(w http.ResponseWriter) {
	out := Map{"data": c.Transform()}
	if c.pagination != nil {
		out["pagination"] = c.pagination
	}
	if c.meta != nil {
		out["meta"] = c.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Helpers -------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
