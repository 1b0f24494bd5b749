package services_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/app/repositories"
	"github.com/vitrinehq/vitrine/app/services"
	"github.com/vitrinehq/vitrine/pkg/storage"
	"github.com/vitrinehq/vitrine/pkg/testkit"
)

// uploadHeader builds a *multipart.FileHeader the way an HTTP request would.
func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("featured_image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["featured_image"][0]
}

func TestCreateWithoutFileLeavesImageFieldsNil(t *testing.T) {
	testkit.SetupDB(t)
	svc := services.NewProductService()

	product, err := svc.Create(services.ProductInput{
		Name:        "Widget",
		Description: "A test widget",
		Price:       "9.99",
	}, nil)
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Nil(t, product.FeaturedImage)
	assert.Nil(t, product.FeaturedImageOriginalName)

	// Read-back returns the submitted values.
	stored, err := svc.Find(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", stored.Name)
	assert.Equal(t, "A test widget", stored.Description)
	assert.Equal(t, "9.99", stored.Price)
}

func TestCreateWithFileStoresBothImageFields(t *testing.T) {
	testkit.SetupDB(t)
	testkit.SetupStorage(t)
	svc := services.NewProductService()

	fh := uploadHeader(t, "photo.png", []byte("png-bytes"))
	product, err := svc.Create(services.ProductInput{
		Name:        "Lamp",
		Description: "Brass lamp",
		Price:       "89.00",
	}, fh)
	require.NoError(t, err)

	require.NotNil(t, product.FeaturedImage)
	require.NotNil(t, product.FeaturedImageOriginalName)
	assert.Equal(t, "photo.png", *product.FeaturedImageOriginalName)
	assert.Contains(t, *product.FeaturedImage, "products/")

	// The stored name is server-generated, never the client's filename.
	assert.NotContains(t, *product.FeaturedImage, "photo.png")
	assert.True(t, storage.Exists(*product.FeaturedImage))
}

func TestUpdateWithoutFilePreservesImage(t *testing.T) {
	testkit.SetupDB(t)
	testkit.SetupStorage(t)
	svc := services.NewProductService()

	fh := uploadHeader(t, "original.jpg", []byte("jpg"))
	product, err := svc.Create(services.ProductInput{
		Name: "Rug", Description: "Wool rug", Price: "219.00",
	}, fh)
	require.NoError(t, err)
	priorPath := *product.FeaturedImage

	updated, err := svc.Update(product.ID, services.ProductInput{
		Name: "Wool Rug", Description: "Large wool rug", Price: "229.00",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Wool Rug", updated.Name)
	assert.Equal(t, "229.00", updated.Price)
	require.NotNil(t, updated.FeaturedImage)
	assert.Equal(t, priorPath, *updated.FeaturedImage)
	require.NotNil(t, updated.FeaturedImageOriginalName)
	assert.Equal(t, "original.jpg", *updated.FeaturedImageOriginalName)
}

func TestUpdateWithFileReplacesBothImageFields(t *testing.T) {
	testkit.SetupDB(t)
	testkit.SetupStorage(t)
	svc := services.NewProductService()

	product, err := svc.Create(services.ProductInput{
		Name: "Vase", Description: "Stoneware", Price: "43.50",
	}, uploadHeader(t, "before.png", []byte("a")))
	require.NoError(t, err)
	priorPath := *product.FeaturedImage

	updated, err := svc.Update(product.ID, services.ProductInput{
		Name: "Vase", Description: "Stoneware", Price: "43.50",
	}, uploadHeader(t, "after.png", []byte("b")))
	require.NoError(t, err)

	require.NotNil(t, updated.FeaturedImage)
	assert.NotEqual(t, priorPath, *updated.FeaturedImage)
	require.NotNil(t, updated.FeaturedImageOriginalName)
	assert.Equal(t, "after.png", *updated.FeaturedImageOriginalName)
}

func TestUpdateMissingProduct(t *testing.T) {
	testkit.SetupDB(t)
	svc := services.NewProductService()

	_, err := svc.Update(4242, services.ProductInput{
		Name: "x", Description: "y", Price: "1",
	}, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteMissingProduct(t *testing.T) {
	testkit.SetupDB(t)
	svc := services.NewProductService()

	assert.ErrorIs(t, svc.Delete(4242), repositories.ErrNotFound)
}
