// Package repositories holds the database access layer. Repositories speak
// the orm.Query wrapper and never leak *gorm.DB into services or controllers.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/pkg/orm"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")

// searchColumns are the columns a free-text search matches against. Price is
// included because the column stores text and admins search by amount.
var searchColumns = []string{"name", "description", "price"}

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Search returns one page of products matching the free-text term, newest
// first. An empty term returns the unfiltered set. perPage orm.PerPageAll
// disables pagination.
func (r *ProductRepository) Search(term string, page, perPage int) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{})
	if term != "" {
		q = q.WhereLike(term, searchColumns...)
	}

	var products []models.Product
	pagination, err := q.Order("created_at DESC").GetWithPagination(&products, page, perPage)
	return products, pagination, err
}

// CountAll returns the number of products irrespective of any filter.
func (r *ProductRepository) CountAll() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Product{}).Count(&n)
	return n, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, ErrNotFound
	}
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete removes a product by id. Deleting an id that does not exist returns
// ErrNotFound rather than silently succeeding.
func (r *ProductRepository) Delete(id uint) error {
	affected, err := orm.DB().Where("id = ?", id).Delete(&models.Product{})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
