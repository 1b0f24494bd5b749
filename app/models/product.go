package models

import "gorm.io/gorm"

// Product is the catalogue entity managed by this application.
//
// Price is stored as text: the admin screen accepts free-form numeric input
// and no currency arithmetic happens server-side, so the value round-trips
// exactly as entered.
//
// FeaturedImage and FeaturedImageOriginalName are set together on upload and
// are both nil when no image was supplied.
type Product struct {
	gorm.Model
	Name                      string  `gorm:"size:255;not null;index" json:"name"`
	Description               string  `gorm:"type:text;not null"      json:"description"`
	Price                     string  `gorm:"size:64;not null"        json:"price"`
	FeaturedImage             *string `gorm:"size:2048"               json:"featured_image"`
	FeaturedImageOriginalName *string `gorm:"size:255"                json:"featured_image_original_name"`
}
