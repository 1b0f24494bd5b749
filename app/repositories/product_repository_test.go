package repositories_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/app/repositories"
	"github.com/vitrinehq/vitrine/pkg/orm"
	"github.com/vitrinehq/vitrine/pkg/testkit"
)

func TestSearchMatchesSubstringAcrossColumns(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()

	for _, p := range []models.Product{
		{Name: "Walnut Desk", Description: "solid wood", Price: "120.00"},
		{Name: "Chair", Description: "a walnut finish", Price: "80.00"},
		{Name: "Lamp", Description: "brass", Price: "45.50"},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	products, _, err := repo.Search("walnut", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		text := strings.ToLower(p.Name + " " + p.Description + " " + p.Price)
		assert.Contains(t, text, "walnut")
	}

	// Price column matches too.
	products, _, err = repo.Search("45.5", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()

	require.NoError(t, db.Create(&models.Product{Name: "Widget", Description: "x", Price: "1"}).Error)

	for _, term := range []string{"widget", "WIDGET", "WiDgEt"} {
		products, _, err := repo.Search(term, 1, 10)
		require.NoError(t, err)
		assert.Len(t, products, 1, "term %q", term)
	}
}

func TestSearchTreatsWildcardsAsLiterals(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()

	require.NoError(t, db.Create(&models.Product{Name: "100% cotton shirt", Description: "soft", Price: "20"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "snake_case tool", Description: "dev", Price: "5"}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "plain", Description: "plain", Price: "1"}).Error)

	products, _, err := repo.Search("100%", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "100% cotton shirt", products[0].Name)

	// "_" must not act as a single-character wildcard.
	products, _, err = repo.Search("e_c", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "snake_case tool", products[0].Name)
}

func TestSearchOrdersNewestFirst(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()

	old := models.Product{Name: "Old", Description: "x", Price: "1"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().Add(-time.Hour)).Error)

	recent := models.Product{Name: "New", Description: "x", Price: "1"}
	require.NoError(t, db.Create(&recent).Error)

	products, _, err := repo.Search("", 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "New", products[0].Name)
	assert.Equal(t, "Old", products[1].Name)
}

func TestSearchPagination(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()
	testkit.SeedProducts(t, db, 12)

	products, pagination, err := repo.Search("", 3, 5)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 11, pagination.From)
	assert.Equal(t, 12, pagination.To)
	assert.EqualValues(t, 12, pagination.Total)
	assert.Equal(t, 3, pagination.LastPage)

	// Page size caps every full page.
	products, _, err = repo.Search("", 1, 5)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestSearchPerPageAllReturnsEverything(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()
	testkit.SeedProducts(t, db, 12)

	products, pagination, err := repo.Search("", 1, orm.PerPageAll)
	require.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 1, pagination.LastPage)
	assert.Equal(t, 1, pagination.From)
	assert.Equal(t, 12, pagination.To)
}

func TestSearchOutOfRangePageIsEmptyNotError(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()
	testkit.SeedProducts(t, db, 3)

	products, pagination, err := repo.Search("", 9, 5)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.EqualValues(t, 3, pagination.Total)
}

func TestFindByIDNotFound(t *testing.T) {
	testkit.SetupDB(t)
	repo := repositories.NewProductRepository()

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteRemovesAndSignalsMissing(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()
	seeded := testkit.SeedProducts(t, db, 2)

	require.NoError(t, repo.Delete(seeded[0].ID))

	products, _, err := repo.Search("", 1, 10)
	require.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, seeded[0].ID, p.ID)
	}

	// Deleting the same id again is a not-found condition.
	assert.ErrorIs(t, repo.Delete(seeded[0].ID), repositories.ErrNotFound)
}

func TestCountAllIgnoresFilter(t *testing.T) {
	db := testkit.SetupDB(t)
	repo := repositories.NewProductRepository()
	testkit.SeedProducts(t, db, 7)

	n, err := repo.CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}
