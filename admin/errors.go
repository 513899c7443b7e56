package admin

import "github.com/pkg/errors"

var (
	ErrValidation = errors.New("invalid request")
	ErrConflict   = errors.New("record already exists")
	ErrNotFound   = errors.New("record not found")
)

func validationError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}
