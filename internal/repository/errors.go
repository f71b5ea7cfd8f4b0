package repository

import "errors"

var (
	// ErrDirectoryNotFound indicates an input directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrImageNotFound indicates the named image is not in the directory
	ErrImageNotFound = errors.New("image not found")

	// ErrDecodeFailed indicates the file exists but could not be decoded
	ErrDecodeFailed = errors.New("image decode failed")
)
