package store

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/bitmark-inc/safetynet-alerts/consts"
	"github.com/bitmark-inc/safetynet-alerts/schema"
)

// decodeDocument parses the persisted document. Missing or null collections
// decode as empty ones.
func decodeDocument(data []byte) (schema.Dataset, error) {
	var ds schema.Dataset

	if !gjson.ValidBytes(data) {
		return ds, errors.Wrap(ErrInvalidDocument, "not a valid json document")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return ds, errors.Wrap(ErrInvalidDocument, "document root is not an object")
	}

	keys := []string{consts.DocumentPersons, consts.DocumentFirestations, consts.DocumentMedicalRecords}
	targets := []interface{}{&ds.Persons, &ds.Firestations, &ds.MedicalRecords}

	for i, r := range gjson.GetManyBytes(data, keys...) {
		if !r.Exists() || r.Type == gjson.Null {
			continue
		}
		if !r.IsArray() {
			return ds, errors.Wrapf(ErrInvalidDocument, "%s is not a list", keys[i])
		}
		if err := json.Unmarshal([]byte(r.Raw), targets[i]); err != nil {
			return ds, errors.Wrapf(ErrInvalidDocument, "could not decode %s: %s", keys[i], err)
		}
	}

	ds.Normalize()
	return ds, nil
}

func encodeDocument(ds schema.Dataset) ([]byte, error) {
	ds.Normalize()
	b, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal document")
	}
	return b, nil
}

func documentRevision(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
