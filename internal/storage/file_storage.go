package storage

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageLoader decodes an image from a file path
type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
}

// FileImageLoader decodes PNG, JPEG, BMP and TIFF files from the local filesystem
type FileImageLoader struct{}

func NewFileImageLoader() ImageLoader {
	return &FileImageLoader{}
}

func (l *FileImageLoader) LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return img, nil
}
