package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
)

const (
	uploadsDir = "uploads"
	defaultExt = ".bin"
)

// imageExts are the extensions kept from the filename. Anything else is
// stored as .bin so that it is never served as markup.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// FileStorage stores uploaded media on the local filesystem under a root
// directory. Stored paths look like uploads/2025/09/<hex>.png and are
// served below /media/.
type FileStorage struct {
	root string
	now  func() time.Time
}

var _ interfaces.Storage = (*FileStorage)(nil)

// Option configures FileStorage
type Option func(*FileStorage)

// WithClock replaces the clock used for the year/month directories
func WithClock(now func() time.Time) Option {
	return func(s *FileStorage) {
		s.now = now
	}
}

// NewFileStorage creates the root directory if needed
func NewFileStorage(root string, opts ...Option) (*FileStorage, error) {
	if root == "" {
		return nil, goerr.New("media root is required", goerr.T(model.ErrTagConfiguration))
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve media root", goerr.V("root", root))
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create media root", goerr.V("root", abs))
	}

	s := &FileStorage{root: abs, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the absolute media root
func (s *FileStorage) Root() string {
	return s.root
}

// Save writes data and returns its path relative to the root
func (s *FileStorage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	now := s.now()
	rel := path.Join(
		uploadsDir,
		now.Format("2006"),
		now.Format("01"),
		strings.ReplaceAll(uuid.NewString(), "-", "")+extension(filename),
	)

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create upload directory", goerr.V("path", full))
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write upload", goerr.V("path", full))
	}

	ctxlog.From(ctx).Debug("media stored", "path", rel, "size", len(data))
	return rel, nil
}

// Delete removes a stored file. Missing files are ignored and paths that
// leave the root are rejected.
func (s *FileStorage) Delete(ctx context.Context, relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to delete media", goerr.V("path", relPath))
	}
	return nil
}

func (s *FileStorage) resolve(relPath string) (string, error) {
	cleaned := path.Clean("/" + filepath.ToSlash(relPath))
	if cleaned == "/" || strings.Contains(relPath, "..") {
		return "", goerr.New("invalid media path",
			goerr.T(model.ErrTagValidation),
			goerr.V("path", relPath))
	}

	full := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", goerr.New("media path escapes root",
			goerr.T(model.ErrTagValidation),
			goerr.V("path", relPath))
	}
	return full, nil
}

func extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return defaultExt
	}
	return ext
}
