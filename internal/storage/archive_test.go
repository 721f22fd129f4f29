package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quickpost/publisher/internal/publish"
	"github.com/stretchr/testify/require"
)

type object struct {
	body        string
	contentType string
}

type fakeStore struct {
	objects map[string]object
	keys    []string
	err     error
}

func (f *fakeStore) UploadFile(ctx context.Context, key string, r io.Reader, size int64, ct string) error {
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if int64(len(b)) != size {
		return errors.New("size mismatch")
	}
	if f.objects == nil {
		f.objects = map[string]object{}
	}
	f.objects[key] = object{body: string(b), contentType: ct}
	f.keys = append(f.keys, key)
	return nil
}

func TestArchiveUploadsCommittedFiles(t *testing.T) {
	store := &fakeStore{}
	rec := &publish.Record{
		Layout: publish.Layout{HTMLPath: "articles/a.html", MarkdownPath: "content/a.md"},
		Contents: map[string]string{
			"articles/a.html": "<h1>a</h1>",
			"content/a.md":    "# a\n\n",
		},
	}

	require.NoError(t, NewArchive(store).AfterCommit(context.Background(), rec))
	require.Equal(t, []string{"content/a.md", "articles/a.html"}, store.keys)
	require.Equal(t, "<h1>a</h1>", store.objects["articles/a.html"].body)
	require.Equal(t, "text/html; charset=utf-8", store.objects["articles/a.html"].contentType)
	require.Equal(t, "text/markdown; charset=utf-8", store.objects["content/a.md"].contentType)
}

func TestArchiveReportsFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("bucket gone")}
	rec := &publish.Record{Layout: publish.Layout{HTMLPath: "x.html"}, Contents: map[string]string{"x.html": "x"}}

	err := NewArchive(store).AfterCommit(context.Background(), rec)
	require.ErrorContains(t, err, "archive x.html: bucket gone")
}
