package store

import (
	"github.com/bitmark-inc/safetynet-alerts/schema"
)

// cloneMedicalRecord copies the lists of m, turning missing ones into empty
// lists
func cloneMedicalRecord(m schema.MedicalRecord) schema.MedicalRecord {
	m.Medications = append([]string{}, m.Medications...)
	m.Allergies = append([]string{}, m.Allergies...)
	return m
}

// FindMedicalRecord returns the first medical record matching the identity
func (s *DataStore) FindMedicalRecord(firstName, lastName string) (schema.MedicalRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.data.MedicalRecords {
		if sameIdentity(m.FirstName, m.LastName, firstName, lastName) {
			return cloneMedicalRecord(m), true
		}
	}
	return schema.MedicalRecord{}, false
}

// AddMedicalRecord appends a record and persists the document. It returns
// false without writing when a record with the same identity exists.
func (s *DataStore) AddMedicalRecord(m schema.MedicalRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.data.MedicalRecords {
		if sameIdentity(cur.FirstName, cur.LastName, m.FirstName, m.LastName) {
			return false, nil
		}
	}

	next := s.data
	next.MedicalRecords = append(
		append(make([]schema.MedicalRecord, 0, len(s.data.MedicalRecords)+1), s.data.MedicalRecords...),
		cloneMedicalRecord(m),
	)
	if err := s.persistLocked(next); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateMedicalRecord replaces the first record sharing m's identity and
// returns the stored record
func (s *DataStore) UpdateMedicalRecord(m schema.MedicalRecord) (schema.MedicalRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.data.MedicalRecords {
		if !sameIdentity(cur.FirstName, cur.LastName, m.FirstName, m.LastName) {
			continue
		}

		m = cloneMedicalRecord(m)
		m.FirstName = cur.FirstName
		m.LastName = cur.LastName

		next := s.data
		next.MedicalRecords = append([]schema.MedicalRecord{}, s.data.MedicalRecords...)
		next.MedicalRecords[i] = m
		if err := s.persistLocked(next); err != nil {
			return schema.MedicalRecord{}, false, err
		}
		return cloneMedicalRecord(m), true, nil
	}
	return schema.MedicalRecord{}, false, nil
}

// DeleteMedicalRecord removes every record matching the identity
func (s *DataStore) DeleteMedicalRecord(firstName, lastName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]schema.MedicalRecord, 0, len(s.data.MedicalRecords))
	for _, m := range s.data.MedicalRecords {
		if !sameIdentity(m.FirstName, m.LastName, firstName, lastName) {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.data.MedicalRecords) {
		return false, nil
	}

	next := s.data
	next.MedicalRecords = kept
	if err := s.persistLocked(next); err != nil {
		return false, err
	}
	return true, nil
}
