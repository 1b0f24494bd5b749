package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/vitrinehq/vitrine/pkg/metrics"
)

// StoreUpload streams an uploaded file onto the default disk under
// "<category>/<random>.<ext>" and returns the relative path. The caller keeps
// the client's original filename separately; the stored name is always
// server-generated so uploads can never collide or traverse directories.
func StoreUpload(category string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	name := randomName() + sanitizeExt(file.Filename)
	rel := path.Join(strings.Trim(category, "/"), name)

	if err := PutStream(rel, src); err != nil {
		return "", fmt.Errorf("storage: store upload: %w", err)
	}

	metrics.RecordUpload(DefaultName())
	return rel, nil
}

func randomName() string {
	b := make([]byte, 20)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// sanitizeExt keeps only a plain extension from the client filename.
func sanitizeExt(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if ext == "" || ext == "." || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
