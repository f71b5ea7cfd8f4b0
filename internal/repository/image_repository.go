package repository

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go-image-metrics/internal/imaging"
	"go-image-metrics/internal/metrics"
	"go-image-metrics/internal/storage"
)

// FileSystemRepository implements DatasetRepository on local folders
type FileSystemRepository struct {
	loader storage.ImageLoader
}

// NewFileSystemRepository creates a repository decoding files with loader
func NewFileSystemRepository(loader storage.ImageLoader) DatasetRepository {
	return &FileSystemRepository{
		loader: loader,
	}
}

func (r *FileSystemRepository) CheckDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}
	return nil
}

func (r *FileSystemRepository) ListCandidates(dir string, sorted bool) ([]string, error) {
	if err := r.CheckDirectory(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	if sorted {
		sort.Strings(names)
	}
	return names, nil
}

func (r *FileSystemRepository) Exists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.Mode().IsRegular()
}

func (r *FileSystemRepository) FetchGray(dir, name string) (*image.Gray, error) {
	img, err := r.fetch(dir, name)
	if err != nil {
		return nil, err
	}
	return imaging.ToGray(img), nil
}

func (r *FileSystemRepository) FetchRGB(dir, name string) (*metrics.RGBGrid, error) {
	img, err := r.fetch(dir, name)
	if err != nil {
		return nil, err
	}
	return imaging.ToRGBGrid(img), nil
}

func (r *FileSystemRepository) fetch(dir, name string) (image.Image, error) {
	path := filepath.Join(dir, name)
	if !r.Exists(dir, name) {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	img, err := r.loader.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return img, nil
}

// IsImageFile checks if a file extension belongs to a recognised image file
func IsImageFile(name string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(name)))
}
