package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/service/storage"
	"github.com/urfave/cli/v3"
)

// Media holds upload storage settings
type Media struct {
	Root        string
	MaxUploadMB int
}

// Flags returns CLI flags for Media configuration
func (m *Media) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "media-root",
			Usage:       "Directory storing uploaded images",
			Category:    "Media",
			Value:       "./media",
			Sources:     cli.EnvVars("POSTWAVE_MEDIA_ROOT"),
			Destination: &m.Root,
		},
		&cli.IntFlag{
			Name:        "max-upload-mb",
			Usage:       "Size limit of a single uploaded image in megabytes",
			Category:    "Media",
			Value:       5,
			Sources:     cli.EnvVars("POSTWAVE_MAX_UPLOAD_MB"),
			Destination: &m.MaxUploadMB,
		},
	}
}

// Configure creates the file storage, creating the root when missing
func (m *Media) Configure() (*storage.FileStorage, error) {
	if m.MaxUploadMB <= 0 {
		return nil, goerr.New("max upload size must be positive",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("max_upload_mb", m.MaxUploadMB))
	}

	fs, err := storage.NewFileStorage(m.Root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare media storage",
			goerr.T(model.ErrTagConfiguration),
			goerr.V("root", m.Root))
	}
	return fs, nil
}

// MaxUploadBytes returns the size limit of a single image in bytes
func (m *Media) MaxUploadBytes() int {
	return m.MaxUploadMB << 20
}

// LogValue returns structured log value
func (m Media) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("root", m.Root),
		slog.Int("max_upload_mb", m.MaxUploadMB),
	)
}
