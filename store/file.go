package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileBackend stores the document as a JSON file. Writes go to a temporary
// file in the same directory which is then renamed over the document.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = "runtime-data/data.json"
	}
	return &FileBackend{path: path}
}

func (b *FileBackend) Name() string { return "file" }

// Path returns the location of the document
func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotExist
		}
		return nil, errors.Wrapf(err, "could not read %s", b.path)
	}
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "could not create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".data-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file in %s", dir)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "could not write to file %s", tmp.Name())
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "could not sync file %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not close file %s", tmp.Name())
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return errors.Wrapf(err, "could not replace %s", b.path)
	}
	return nil
}

func (b *FileBackend) Ping(ctx context.Context) error {
	dir := filepath.Dir(b.path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	return nil
}

func (b *FileBackend) Close(ctx context.Context) error { return nil }
