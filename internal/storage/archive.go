package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/quickpost/publisher/internal/publish"
)

// ObjectStore is the part of MinIOStorage the archive needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// Archive copies every committed file into object storage under the same key.
type Archive struct {
	store ObjectStore
}

func NewArchive(store ObjectStore) *Archive {
	return &Archive{store: store}
}

func (a *Archive) Name() string { return "archive" }

// AfterCommit uploads the files of rec in commit order and stops at the first failure.
func (a *Archive) AfterCommit(ctx context.Context, rec *publish.Record) error {
	for _, key := range rec.Layout.Files() {
		body := rec.Contents[key]
		if err := a.store.UploadFile(ctx, key, strings.NewReader(body), int64(len(body)), contentType(key)); err != nil {
			return fmt.Errorf("archive %s: %w", key, err)
		}
	}
	return nil
}

func contentType(key string) string {
	switch path.Ext(key) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".md":
		return "text/markdown; charset=utf-8"
	}
	return "application/octet-stream"
}
