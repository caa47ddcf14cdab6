package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/storage"
)

func TestFileStorageSave(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	clock := func() time.Time { return time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC) }

	s, err := storage.NewFileStorage(root, storage.WithClock(clock))
	gt.NoError(t, err).Required()

	t.Run("keeps extension", func(t *testing.T) {
		rel, err := s.Save(ctx, "photo.PNG", []byte("png-data"))
		gt.NoError(t, err).Required()
		gt.True(t, regexp.MustCompile(`^uploads/2025/09/[0-9a-f]{32}\.png$`).MatchString(rel))

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		gt.NoError(t, err).Required()
		gt.Equal(t, string(data), "png-data")
	})

	t.Run("defaults to .bin", func(t *testing.T) {
		for _, name := range []string{"", "noext", "weird.!!", "vector.svg", "page.html", "script.js"} {
			rel, err := s.Save(ctx, name, []byte("x"))
			gt.NoError(t, err).Required()
			gt.Equal(t, filepath.Ext(rel), ".bin")
		}
	})

	t.Run("unique names", func(t *testing.T) {
		a, err := s.Save(ctx, "a.jpg", []byte("1"))
		gt.NoError(t, err).Required()
		b, err := s.Save(ctx, "a.jpg", []byte("2"))
		gt.NoError(t, err).Required()
		gt.NotEqual(t, a, b)
	})
}

func TestFileStorageDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := storage.NewFileStorage(root)
	gt.NoError(t, err).Required()

	rel, err := s.Save(ctx, "a.webp", []byte("data"))
	gt.NoError(t, err).Required()

	gt.NoError(t, s.Delete(ctx, rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	gt.True(t, os.IsNotExist(err))

	// already gone
	gt.NoError(t, s.Delete(ctx, rel))

	for _, bad := range []string{"../outside.txt", "uploads/../../etc/passwd", ""} {
		err := s.Delete(ctx, bad)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	}
}

func TestNewFileStorageRequiresRoot(t *testing.T) {
	_, err := storage.NewFileStorage("")
	gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
}
