package admin

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

func validateFirestation(f *schema.FirestationMapping) error {
	if f == nil {
		return validationError("firestation body is required")
	}
	if utils.IsBlank(f.Address) {
		return validationError("address is required")
	}
	if f.Station <= 0 {
		return validationError("station must be a positive number")
	}
	return nil
}

// GetFirestation returns the first mapping of an address
func (s *Service) GetFirestation(address string) (schema.FirestationMapping, error) {
	if utils.IsBlank(address) {
		return schema.FirestationMapping{}, validationError("address is required")
	}
	mappings := s.store.FindFirestations(address)
	if len(mappings) == 0 {
		return schema.FirestationMapping{}, errors.Wrapf(ErrNotFound, "firestation for %s", address)
	}
	return mappings[0], nil
}

func (s *Service) ListFirestations() []schema.FirestationMapping {
	return s.store.Snapshot().Firestations
}

// AddFirestation maps a new address. An address maps to one station at most.
func (s *Service) AddFirestation(f *schema.FirestationMapping) (schema.FirestationMapping, error) {
	if err := validateFirestation(f); err != nil {
		return schema.FirestationMapping{}, err
	}

	added, err := s.store.AddFirestation(*f)
	if err != nil {
		return schema.FirestationMapping{}, err
	}
	if !added {
		return schema.FirestationMapping{}, errors.Wrapf(ErrConflict, "firestation for %s", f.Address)
	}

	s.log.WithField("address", f.Address).WithField("station", f.Station).Info("firestation mapping created")
	return *f, nil
}

func (s *Service) UpdateFirestation(f *schema.FirestationMapping) (schema.FirestationMapping, error) {
	if err := validateFirestation(f); err != nil {
		return schema.FirestationMapping{}, err
	}

	stored, updated, err := s.store.UpdateFirestation(*f)
	if err != nil {
		return schema.FirestationMapping{}, err
	}
	if !updated {
		return schema.FirestationMapping{}, errors.Wrapf(ErrNotFound, "firestation for %s", f.Address)
	}
	return stored, nil
}

// DeleteFirestation removes every mapping of a station when selector is
// numeric, otherwise the mapping of the address it names. It returns the
// number of mappings removed.
func (s *Service) DeleteFirestation(selector string) (int, error) {
	if utils.IsBlank(selector) {
		return 0, validationError("address or station is required")
	}

	removed, err := s.store.DeleteFirestation(selector)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, errors.Wrapf(ErrNotFound, "firestation %s", selector)
	}

	s.log.WithField("selector", selector).WithField("removed", removed).Info("firestation mappings deleted")
	return removed, nil
}
