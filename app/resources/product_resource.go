// Package resources shapes models into the JSON view a client receives. Raw
// store records are never exposed directly; every row of every page passes
// through its resource first.
package resources

import (
	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/pkg/resource"
	"github.com/vitrinehq/vitrine/pkg/storage"
)

// createdAtFormat is the display pattern for record timestamps, e.g.
// "05 Jan 2024".
const createdAtFormat = "02 Jan 2006"

// ProductResource transforms a Product into its API shape. Scalar fields pass
// through unchanged; created_at is rendered as a display date and the image
// path gets a resolvable URL alongside it.
type ProductResource struct{}

func (ProductResource) ToArray(p models.Product) resource.Map {
	m := resource.Map{
		"id":                           p.ID,
		"name":                         p.Name,
		"description":                  p.Description,
		"price":                        p.Price,
		"featured_image":               nil,
		"featured_image_url":           nil,
		"featured_image_original_name": nil,
		"created_at":                   p.CreatedAt.Format(createdAtFormat),
	}

	if p.FeaturedImage != nil && *p.FeaturedImage != "" {
		m["featured_image"] = *p.FeaturedImage
		m["featured_image_url"] = storage.URL(*p.FeaturedImage)
	}
	if p.FeaturedImageOriginalName != nil {
		m["featured_image_original_name"] = *p.FeaturedImageOriginalName
	}

	return m
}
