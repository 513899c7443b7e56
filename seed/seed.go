// Package seed provides the template document used to initialize an empty
// data store.
package seed

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
)

//go:embed data.json
var template []byte

// Default returns a copy of the embedded template
func Default() []byte {
	return append([]byte{}, template...)
}

// Template returns a loader reading the seed document from path, or the
// embedded template when path is empty.
func Template(path string) func() ([]byte, error) {
	return func() ([]byte, error) {
		if path == "" {
			return Default(), nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read seed file %s", path)
		}
		return data, nil
	}
}
