package repository

import (
	"image"

	"go-image-metrics/internal/metrics"
)

// DatasetRepository gives access to the image files of an evaluation folder
type DatasetRepository interface {
	// CheckDirectory returns ErrDirectoryNotFound unless dir is an existing directory
	CheckDirectory(dir string) error

	// ListCandidates returns the names of recognised image files in dir, in
	// listing order or sorted by name
	ListCandidates(dir string, sorted bool) ([]string, error)

	// Exists reports whether dir holds a regular file called name
	Exists(dir, name string) bool

	// FetchGray decodes dir/name as 8-bit luma
	FetchGray(dir, name string) (*image.Gray, error)

	// FetchRGB decodes dir/name as an R,G,B grid
	FetchRGB(dir, name string) (*metrics.RGBGrid, error)
}

// ImageExtensions are the recognised file extensions, compared case-insensitively
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}
