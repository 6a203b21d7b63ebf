package scss

import (
	"errors"
	"fmt"
	"os"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
)

// ErrFileNotFound is returned by ReadFile when the stylesheet does not exist
var ErrFileNotFound = errors.New("file not found")

// NotFoundError carries the path that was missing. It matches ErrFileNotFound.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrFileNotFound, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// ReadFile reads a stylesheet from disk and extracts its color variables
func ReadFile(path string) (*model.Palette, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Extract(string(data)), nil
}
