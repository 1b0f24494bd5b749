package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/pkg/auth"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("products", SeedProducts)
}

// SeedAdminUser creates the default admin account if none exists.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Admin",
		Email:    "admin@vitrine.local",
		Password: hash,
		Role:     "admin",
	}).Error
}

// SeedProducts inserts a dozen sample products for local development.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []struct {
		name  string
		price string
	}{
		{"Walnut Desk Organizer", "39.99"},
		{"Brass Table Lamp", "89.00"},
		{"Linen Throw Pillow", "24.50"},
		{"Ceramic Pour-Over Set", "54.00"},
		{"Oak Bookend Pair", "31.75"},
		{"Wool Area Rug", "219.00"},
		{"Glass Carafe", "18.25"},
		{"Leather Desk Pad", "65.00"},
		{"Cast Iron Trivet", "22.00"},
		{"Bamboo Cutting Board", "27.90"},
		{"Stoneware Vase", "43.50"},
		{"Copper Watering Can", "58.00"},
	}

	for _, s := range samples {
		p := models.Product{
			Name:        s.name,
			Description: fmt.Sprintf("%s, a sample catalogue item for local development.", s.name),
			Price:       s.price,
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
