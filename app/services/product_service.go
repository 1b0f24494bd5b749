// Package services implements the application's use cases on top of the
// repositories. Services own validation-adjacent business rules (image
// handling, field preservation) and log failures with the operation name.
package services

import (
	"errors"
	"mime/multipart"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/app/repositories"
	"github.com/vitrinehq/vitrine/pkg/logger"
	"github.com/vitrinehq/vitrine/pkg/storage"
)

// imageCategory is the blob-storage directory product uploads land in.
const imageCategory = "products"

// ProductInput carries the validated fields of a create/update request.
type ProductInput struct {
	Name        string `json:"name"        form:"name"        validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
	Price       string `json:"price"       form:"price"       validate:"required,numeric"`
}

// ProductService implements the product use cases.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{repo: repositories.NewProductRepository()}
}

// Create stores a new product. When a file is supplied it is moved into blob
// storage first and both image fields are recorded together; without a file
// both stay nil. A storage failure aborts the create, so no partial record
// is written.
func (s *ProductService) Create(input ProductInput, file *multipart.FileHeader) (models.Product, error) {
	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}

	if file != nil {
		path, err := storage.StoreUpload(imageCategory, file)
		if err != nil {
			logger.Error("product create failed", "error", err)
			return models.Product{}, err
		}
		original := file.Filename
		product.FeaturedImage = &path
		product.FeaturedImageOriginalName = &original
	}

	if err := s.repo.Create(&product); err != nil {
		logger.Error("product create failed", "error", err)
		return models.Product{}, err
	}

	return product, nil
}

// Update overwrites name/description/price of an existing product. Image
// fields are replaced only when a new file is supplied; otherwise the stored
// values are preserved untouched.
func (s *ProductService) Update(id uint, input ProductInput, file *multipart.FileHeader) (models.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price

	if file != nil {
		path, err := storage.StoreUpload(imageCategory, file)
		if err != nil {
			logger.Error("product update failed", "error", err, "id", id)
			return models.Product{}, err
		}
		original := file.Filename
		product.FeaturedImage = &path
		product.FeaturedImageOriginalName = &original
	}

	if err := s.repo.Update(&product); err != nil {
		logger.Error("product update failed", "error", err, "id", id)
		return models.Product{}, err
	}

	return product, nil
}

// Delete removes a product by id. The stored image file is intentionally left
// in place; file cleanup is an external responsibility.
func (s *ProductService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Error("product delete failed", "error", err, "id", id)
		}
		return err
	}
	return nil
}

// Find returns a single product by id.
func (s *ProductService) Find(id uint) (models.Product, error) {
	return s.repo.FindByID(id)
}
