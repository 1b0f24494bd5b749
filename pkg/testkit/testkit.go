// Package testkit provides the shared fixtures used by the test suites: an
// in-memory database wired into the global connection, a throwaway storage
// disk, and helpers for issuing JSON and multipart requests.
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vitrinehq/vitrine/app/models"
	"github.com/vitrinehq/vitrine/pkg/database"
	"github.com/vitrinehq/vitrine/pkg/storage"
)

// SetupDB opens a per-test in-memory SQLite database, migrates the schema and
// swaps it into the global connection until the test ends.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", sanitizeDBName(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open in-memory database")
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}), "migrate schema")

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

// SetupStorage registers a throwaway local disk rooted in t.TempDir() and
// makes it the default for the duration of the test.
func SetupStorage(t *testing.T) {
	t.Helper()

	name := "test"
	storage.RegisterDisk(name, storage.NewLocalDisk(t.TempDir(), "http://localhost:8080/storage"))
	prev := storage.DefaultName()
	storage.UseDefault(name)
	t.Cleanup(func() {
		if prev != "" {
			storage.UseDefault(prev)
		}
	})
}

// SeedProducts inserts n products named "Product 01".."Product NN" and
// returns them in insertion order.
func SeedProducts(t *testing.T, db *gorm.DB, n int) []models.Product {
	t.Helper()

	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		p := models.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			Description: fmt.Sprintf("Description for product %02d", i),
			Price:       fmt.Sprintf("%d.99", i),
		}
		require.NoError(t, db.Create(&p).Error)
		out = append(out, p)
	}
	return out
}

// DoJSON issues a JSON request against handler and returns the recorder.
func DoJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DoForm issues a urlencoded form request against handler.
func DoForm(t *testing.T, handler http.Handler, method, target string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DoMultipart issues a multipart request with the given fields and, when
// fileField is non-empty, one attached file.
func DoMultipart(t *testing.T, handler http.Handler, method, target string, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorder body into a generic map and fails the
// test on malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out),
		"response is not valid JSON: %s", rec.Body.String())
	return out
}

func sanitizeDBName(name string) string {
	r := strings.NewReplacer("/", "_", " ", "_", "#", "_")
	return r.Replace(name)
}
