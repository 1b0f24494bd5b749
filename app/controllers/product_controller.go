// Package controllers wires HTTP requests to the services. Controllers stay
// thin: parse/validate input, call the service, shape the response.
package controllers

import (
	"errors"
	"net/http"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/app/repositories"
	"github.com/vitrinehq/vitrine/app/resources"
	"github.com/vitrinehq/vitrine/app/services"
	"github.com/vitrinehq/vitrine/app/tables"
	"github.com/vitrinehq/vitrine/app/urls"
	"github.com/vitrinehq/vitrine/config"
	"github.com/vitrinehq/vitrine/pkg/ctx"
	"github.com/vitrinehq/vitrine/pkg/logger"
	"github.com/vitrinehq/vitrine/pkg/resource"
	"github.com/vitrinehq/vitrine/pkg/response"
	"github.com/vitrinehq/vitrine/pkg/session"
)

type ProductController struct {
	service *services.ProductService
	repo    *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		service: services.NewProductService(),
		repo:    repositories.NewProductRepository(),
	}
}

// Index lists products with free-text search and pagination.
// GET /products?search=&perPage=&page=
func (pc *ProductController) Index(c *ctx.Context) {
	filters := urls.ListFilters{
		Search:  c.Query("search"),
		PerPage: c.QueryInt("perPage", config.PerPageDefault()),
		Page:    c.QueryInt("page", 1),
	}

	products, pagination, err := pc.repo.Search(filters.Search, filters.Page, filters.PerPage)
	if err != nil {
		logger.WithCtx(c.Context()).Error("product index failed", "error", err)
		c.Error(http.StatusInternalServerError, "Could not load products")
		return
	}

	totalCount, err := pc.repo.CountAll()
	if err != nil {
		logger.WithCtx(c.Context()).Error("product index failed", "error", err)
		c.Error(http.StatusInternalServerError, "Could not load products")
		return
	}

	// Links carry search and perPage so following one keeps the filter.
	pagination.BuildLinks(config.AppURL()+"/products", filters.Query())

	rows := resource.Many(resources.ProductResource{}, products).Transform()

	props := resource.Map{
		"products": resource.Map{
			"data":  rows,
			"links": pagination.Links,
			"from":  pagination.From,
			"to":    pagination.To,
			"total": pagination.Total,
		},
		"filters": resource.Map{
			"search":  filters.Search,
			"perPage": filters.PerPage,
		},
		"totalCount":    totalCount,
		"filteredCount": pagination.Total,
		"table":         tables.Product().Render(rows),
	}

	// One-shot flash left by a mutation redirect, if any.
	sess := session.FromCtx(c.R)
	if msg, ok := sess.GetFlashString("success"); ok {
		props["flash"] = resource.Map{"success": msg}
		sess.Save(c.W) //nolint:errcheck
	} else if msg, ok := sess.GetFlashString("error"); ok {
		props["flash"] = resource.Map{"error": msg}
		sess.Save(c.W) //nolint:errcheck
	}

	c.Success(props)
}

// Create serves the blank-form props.
// GET /products/create
func (pc *ProductController) Create(c *ctx.Context) {
	c.Success(resource.Map{
		"product": nil,
		"submit":  urls.StoreRequest(),
	})
}

// Store creates a product from a multipart or JSON body.
// POST /products
func (pc *ProductController) Store(c *ctx.Context) {
	var input services.ProductInput
	if errs, err := c.Bind(&input); err != nil {
		c.Error(http.StatusBadRequest, "Malformed request body")
		return
	} else if len(errs) > 0 {
		c.ValidationError(errs)
		return
	}

	file, err := c.FormFile("featured_image")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid upload")
		return
	}

	product, err := pc.service.Create(input, file)
	if err != nil {
		pc.fail(c, "Unable to create product. Please try again.")
		return
	}

	pc.flash(c, "Product created successfully.")
	response.SuccessNotice(c.W, http.StatusCreated,
		resource.One(resources.ProductResource{}, product),
		"Product created successfully.")
}

// Show returns one product.
// GET /products/{id}
func (pc *ProductController) Show(c *ctx.Context) {
	product, ok := pc.find(c)
	if !ok {
		return
	}
	c.Success(resource.Map{
		"product": resource.One(resources.ProductResource{}, product),
	})
}

// Edit serves the pre-filled form props for one product.
// GET /products/{id}/edit
func (pc *ProductController) Edit(c *ctx.Context) {
	product, ok := pc.find(c)
	if !ok {
		return
	}
	c.Success(resource.Map{
		"product": resource.One(resources.ProductResource{}, product),
		"submit":  urls.UpdateRequest(product.ID),
	})
}

// Update overwrites a product's fields; image fields only when a new file is
// part of the request.
// PUT /products/{id}
func (pc *ProductController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return
	}

	var input services.ProductInput
	if errs, err := c.Bind(&input); err != nil {
		c.Error(http.StatusBadRequest, "Malformed request body")
		return
	} else if len(errs) > 0 {
		c.ValidationError(errs)
		return
	}

	file, err := c.FormFile("featured_image")
	if err != nil {
		c.Error(http.StatusBadRequest, "Invalid upload")
		return
	}

	product, err := pc.service.Update(id, input, file)
	if errors.Is(err, repositories.ErrNotFound) {
		c.NotFound("Product not found")
		return
	}
	if err != nil {
		pc.fail(c, "Unable to update product. Please try again.")
		return
	}

	pc.flash(c, "Product updated successfully.")
	response.SuccessNotice(c.W, http.StatusOK,
		resource.One(resources.ProductResource{}, product),
		"Product updated successfully.")
}

// Destroy deletes a product. A missing id is a not-found condition, never a
// silent success.
// DELETE /products/{id}
func (pc *ProductController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return
	}

	err = pc.service.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.NotFound("Product not found")
		return
	}
	if err != nil {
		pc.fail(c, "Unable to delete product. Please try again.")
		return
	}

	pc.flash(c, "Product deleted successfully.")
	response.SuccessNotice(c.W, http.StatusOK, nil, "Product deleted successfully.")
}

// find resolves the {id} parameter to a product, writing the 404 itself on
// failure.
func (pc *ProductController) find(c *ctx.Context) (models.Product, bool) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.NotFound()
		return models.Product{}, false
	}

	product, err := pc.service.Find(id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.NotFound("Product not found")
		return models.Product{}, false
	}
	if err != nil {
		logger.WithCtx(c.Context()).Error("product lookup failed", "error", err, "id", id)
		c.Error(http.StatusInternalServerError, "Could not load product")
		return models.Product{}, false
	}

	return product, true
}

func (pc *ProductController) fail(c *ctx.Context, message string) {
	sess := session.FromCtx(c.R)
	sess.Flash("error", message)
	sess.Save(c.W) //nolint:errcheck
	response.ErrorNotice(c.W, http.StatusInternalServerError, message)
}

func (pc *ProductController) flash(c *ctx.Context, message string) {
	sess := session.FromCtx(c.R)
	sess.Flash("success", message)
	sess.Save(c.W) //nolint:errcheck
}
