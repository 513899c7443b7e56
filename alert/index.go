package alert

import (
	"time"

	"github.com/bitmark-inc/safetynet-alerts/consts"
	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

// recordIndex looks up medical records by normalized identity. The first
// record of an identity wins.
type recordIndex map[string]schema.MedicalRecord

func identityKey(firstName, lastName string) string {
	return utils.Normalize(firstName) + "\x00" + utils.Normalize(lastName)
}

func newRecordIndex(ds schema.Dataset) recordIndex {
	idx := make(recordIndex, len(ds.MedicalRecords))
	for _, r := range ds.MedicalRecords {
		key := identityKey(r.FirstName, r.LastName)
		if _, ok := idx[key]; !ok {
			idx[key] = r
		}
	}
	return idx
}

func (idx recordIndex) find(p schema.Person) (schema.MedicalRecord, bool) {
	r, ok := idx[identityKey(p.FirstName, p.LastName)]
	return r, ok
}

// age is UnknownAge for a person without a medical record
func (idx recordIndex) age(p schema.Person, now time.Time) int {
	r, ok := idx.find(p)
	if !ok {
		return consts.UnknownAge
	}
	return utils.AgeFromBirthdate(r.Birthdate, now)
}

// orderedSet keeps the first value seen for each key, in insertion order
type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, order: []string{}}
}

func (s *orderedSet) add(key, value string) {
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, value)
}

func (s *orderedSet) values() []string {
	return s.order
}
