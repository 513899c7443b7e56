// Package admin validates record changes and forwards them to the store
package admin

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/store"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

// Service manages persons, fire station mappings and medical records.
// Storage failures are returned unchanged as *store.StorageError.
type Service struct {
	store store.RecordStore
	log   *log.Entry
}

func NewService(s store.RecordStore) *Service {
	return &Service{
		store: s,
		log:   log.WithField("prefix", "admin"),
	}
}

func requireIdentity(firstName, lastName string) error {
	if utils.IsBlank(firstName) || utils.IsBlank(lastName) {
		return validationError("firstName and lastName are required")
	}
	return nil
}

// Person

func (s *Service) GetPerson(firstName, lastName string) (schema.Person, error) {
	if err := requireIdentity(firstName, lastName); err != nil {
		return schema.Person{}, err
	}
	p, ok := s.store.FindPerson(firstName, lastName)
	if !ok {
		return schema.Person{}, errors.Wrapf(ErrNotFound, "person %s %s", firstName, lastName)
	}
	return p, nil
}

func (s *Service) ListPersons() []schema.Person {
	return s.store.Snapshot().Persons
}

func (s *Service) AddPerson(p *schema.Person) (schema.Person, error) {
	if p == nil {
		return schema.Person{}, validationError("person body is required")
	}
	if err := requireIdentity(p.FirstName, p.LastName); err != nil {
		return schema.Person{}, err
	}

	added, err := s.store.AddPerson(*p)
	if err != nil {
		return schema.Person{}, err
	}
	if !added {
		return schema.Person{}, errors.Wrapf(ErrConflict, "person %s", p.FullName())
	}

	s.log.WithField("person", p.FullName()).Info("person created")
	return *p, nil
}

// UpdatePerson replaces the non-identity fields of the person p names
func (s *Service) UpdatePerson(p *schema.Person) (schema.Person, error) {
	if p == nil {
		return schema.Person{}, validationError("person body is required")
	}
	if err := requireIdentity(p.FirstName, p.LastName); err != nil {
		return schema.Person{}, err
	}

	stored, updated, err := s.store.UpdatePerson(*p)
	if err != nil {
		return schema.Person{}, err
	}
	if !updated {
		return schema.Person{}, errors.Wrapf(ErrNotFound, "person %s", p.FullName())
	}

	s.log.WithField("person", stored.FullName()).Info("person updated")
	return stored, nil
}

func (s *Service) DeletePerson(firstName, lastName string) error {
	if err := requireIdentity(firstName, lastName); err != nil {
		return err
	}

	deleted, err := s.store.DeletePerson(firstName, lastName)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.Wrapf(ErrNotFound, "person %s %s", firstName, lastName)
	}

	s.log.WithField("person", strings.TrimSpace(firstName)+" "+strings.TrimSpace(lastName)).Info("person deleted")
	return nil
}
