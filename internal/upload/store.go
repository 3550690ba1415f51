package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	// ErrTooLarge reports a file above the configured cap.
	ErrTooLarge = errors.New("file too large")
	// ErrNotFound reports a filename with no stored file behind it.
	ErrNotFound = errors.New("file not found")
)

// Store keeps uploaded files on disk under server-generated names. The
// client-supplied filename contributes only its extension.
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// Save writes the uploaded file under a fresh uuid-based name and returns
// that name.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("%w: %d bytes over %d limit", ErrTooLarge, fh.Size, s.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Path resolves a stored filename to its on-disk path. Anything that is
// not a bare filename inside the store directory counts as missing.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("%q: %w", filename, ErrNotFound)
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%q: %w", filename, ErrNotFound)
	}
	return path, nil
}
