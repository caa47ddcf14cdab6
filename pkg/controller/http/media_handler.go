package http

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// MediaHandler serves stored uploads. Directories are never listed and
// missing files are answered with 404.
type MediaHandler struct {
	fileSystem http.FileSystem
}

// NewMediaHandler creates a media handler over the storage root
func NewMediaHandler(root string) (*MediaHandler, error) {
	stat, err := os.Stat(root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open media root", goerr.V("root", root))
	}
	if !stat.IsDir() {
		return nil, goerr.New("media root is not a directory", goerr.V("root", root))
	}

	return &MediaHandler{
		fileSystem: http.Dir(root),
	}, nil
}

// ServeHTTP implements the http.Handler interface
func (h *MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + r.URL.Path)

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	contentType, ok := mimeTypes[strings.ToLower(path.Ext(cleanPath))]
	if !ok {
		contentType = "application/octet-stream"
		w.Header().Set("Content-Disposition", "attachment")
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
}

// mimeTypes lists the raster image types served inline. Anything else is
// served as an attachment and never sniffed.
var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}
