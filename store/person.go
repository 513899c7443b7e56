package store

import (
	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

// FindPerson returns the first person matching the identity
func (s *DataStore) FindPerson(firstName, lastName string) (schema.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.data.Persons {
		if sameIdentity(p.FirstName, p.LastName, firstName, lastName) {
			return p, true
		}
	}
	return schema.Person{}, false
}

// FindPersonsByAddress returns every person living at the address
func (s *DataStore) FindPersonsByAddress(address string) []schema.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	persons := []schema.Person{}
	for _, p := range s.data.Persons {
		if utils.SameKey(p.Address, address) {
			persons = append(persons, p)
		}
	}
	return persons
}

// AddPerson appends a person and persists the document. It returns false
// without writing when a person with the same identity exists.
func (s *DataStore) AddPerson(p schema.Person) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.data.Persons {
		if sameIdentity(cur.FirstName, cur.LastName, p.FirstName, p.LastName) {
			return false, nil
		}
	}

	next := s.data
	next.Persons = append(append(make([]schema.Person, 0, len(s.data.Persons)+1), s.data.Persons...), p)
	if err := s.persistLocked(next); err != nil {
		return false, err
	}
	return true, nil
}

// UpdatePerson replaces the first person sharing p's identity and returns
// the stored person. The stored identity spelling is kept.
func (s *DataStore) UpdatePerson(p schema.Person) (schema.Person, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.data.Persons {
		if !sameIdentity(cur.FirstName, cur.LastName, p.FirstName, p.LastName) {
			continue
		}

		p.FirstName = cur.FirstName
		p.LastName = cur.LastName

		next := s.data
		next.Persons = append([]schema.Person{}, s.data.Persons...)
		next.Persons[i] = p
		if err := s.persistLocked(next); err != nil {
			return schema.Person{}, false, err
		}
		return p, true, nil
	}
	return schema.Person{}, false, nil
}

// DeletePerson removes every person matching the identity
func (s *DataStore) DeletePerson(firstName, lastName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]schema.Person, 0, len(s.data.Persons))
	for _, p := range s.data.Persons {
		if !sameIdentity(p.FirstName, p.LastName, firstName, lastName) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.data.Persons) {
		return false, nil
	}

	next := s.data
	next.Persons = kept
	if err := s.persistLocked(next); err != nil {
		return false, err
	}
	return true, nil
}
