package store

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

// FindFirestations returns every mapping for the address
func (s *DataStore) FindFirestations(address string) []schema.FirestationMapping {
	s.mu.Lock()
	defer s.mu.Unlock()

	mappings := []schema.FirestationMapping{}
	for _, f := range s.data.Firestations {
		if utils.SameKey(f.Address, address) {
			mappings = append(mappings, f)
		}
	}
	return mappings
}

// AddFirestation appends a mapping and persists the document. It returns
// false without writing when the address is already mapped.
func (s *DataStore) AddFirestation(f schema.FirestationMapping) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.data.Firestations {
		if utils.SameKey(cur.Address, f.Address) {
			return false, nil
		}
	}

	next := s.data
	next.Firestations = append(
		append(make([]schema.FirestationMapping, 0, len(s.data.Firestations)+1), s.data.Firestations...),
		f,
	)
	if err := s.persistLocked(next); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateFirestation changes the station of the first mapping for f's address
// and returns the stored mapping
func (s *DataStore) UpdateFirestation(f schema.FirestationMapping) (schema.FirestationMapping, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.data.Firestations {
		if !utils.SameKey(cur.Address, f.Address) {
			continue
		}

		f.Address = cur.Address

		next := s.data
		next.Firestations = append([]schema.FirestationMapping{}, s.data.Firestations...)
		next.Firestations[i] = f
		if err := s.persistLocked(next); err != nil {
			return schema.FirestationMapping{}, false, err
		}
		return f, true, nil
	}
	return schema.FirestationMapping{}, false, nil
}

// DeleteFirestation removes all mappings of a station when selector is a
// number, otherwise the first mapping for the address it names. It returns
// the number of mappings removed.
func (s *DataStore) DeleteFirestation(selector string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]schema.FirestationMapping, 0, len(s.data.Firestations))
	if station, err := strconv.Atoi(strings.TrimSpace(selector)); err == nil {
		for _, f := range s.data.Firestations {
			if f.Station != station {
				kept = append(kept, f)
			}
		}
	} else {
		removed := false
		for _, f := range s.data.Firestations {
			if !removed && utils.SameKey(f.Address, selector) {
				removed = true
				continue
			}
			kept = append(kept, f)
		}
	}

	count := len(s.data.Firestations) - len(kept)
	if count == 0 {
		return 0, nil
	}

	next := s.data
	next.Firestations = kept
	if err := s.persistLocked(next); err != nil {
		return 0, err
	}
	return count, nil
}
