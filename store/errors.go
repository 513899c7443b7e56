package store

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDocumentNotExist = errors.New("document does not exist")
	ErrInvalidDocument  = errors.New("invalid document")
)

// StorageError reports a failure to read, parse or persist the document
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is, or wraps, a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
