package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"jobboard/internal/common"
)

// Stored filenames are server-generated (uuid + original extension), so
// anything outside this pattern was never produced by us and is rejected
// before touching the filesystem.
var safeName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// The extension is the one client-controlled part of a stored name; only a
// plain alphanumeric suffix is kept.
var safeExt = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// FileStore persists uploaded CVs under a single root directory and serves
// them back by stored name.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Save writes the uploaded file under a generated name and returns that name.
func (s *FileStore) Save(file *multipart.FileHeader) (string, error) {
	name := uuid.New().String()
	if ext := filepath.Ext(file.Filename); safeExt.MatchString(ext) {
		name += ext
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Path resolves a stored name to an on-disk path, constrained to the root.
// Returns ErrValidation for names we could never have generated and
// ErrNotFound when nothing is stored under the name.
func (s *FileStore) Path(name string) (string, error) {
	if !safeName.MatchString(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: invalid filename", common.ErrValidation)
	}
	path := filepath.Join(s.root, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: file %q", common.ErrNotFound, name)
		}
		return "", fmt.Errorf("stat file: %w", err)
	}
	return path, nil
}

// Remove deletes a stored file. Used to roll back when the application
// insert fails after the CV was written.
func (s *FileStore) Remove(name string) error {
	if !safeName.MatchString(name) || filepath.Base(name) != name {
		return fmt.Errorf("%w: invalid filename", common.ErrValidation)
	}
	return os.Remove(filepath.Join(s.root, name))
}
