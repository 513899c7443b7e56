package admin

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/safetynet-alerts/schema"
)

func (s *Service) GetMedicalRecord(firstName, lastName string) (schema.MedicalRecord, error) {
	if err := requireIdentity(firstName, lastName); err != nil {
		return schema.MedicalRecord{}, err
	}
	r, ok := s.store.FindMedicalRecord(firstName, lastName)
	if !ok {
		return schema.MedicalRecord{}, errors.Wrapf(ErrNotFound, "medical record %s %s", firstName, lastName)
	}
	return r, nil
}

func (s *Service) ListMedicalRecords() []schema.MedicalRecord {
	return s.store.Snapshot().MedicalRecords
}

func (s *Service) AddMedicalRecord(r *schema.MedicalRecord) (schema.MedicalRecord, error) {
	if r == nil {
		return schema.MedicalRecord{}, validationError("medical record body is required")
	}
	if err := requireIdentity(r.FirstName, r.LastName); err != nil {
		return schema.MedicalRecord{}, err
	}

	added, err := s.store.AddMedicalRecord(*r)
	if err != nil {
		return schema.MedicalRecord{}, err
	}
	if !added {
		return schema.MedicalRecord{}, errors.Wrapf(ErrConflict, "medical record %s %s", r.FirstName, r.LastName)
	}

	created := *r
	if created.Medications == nil {
		created.Medications = []string{}
	}
	if created.Allergies == nil {
		created.Allergies = []string{}
	}

	s.log.WithField("record", r.FirstName+" "+r.LastName).Info("medical record created")
	return created, nil
}

// UpdateMedicalRecord replaces the birthdate, medications and allergies of
// the record r names
func (s *Service) UpdateMedicalRecord(r *schema.MedicalRecord) (schema.MedicalRecord, error) {
	if r == nil {
		return schema.MedicalRecord{}, validationError("medical record body is required")
	}
	if err := requireIdentity(r.FirstName, r.LastName); err != nil {
		return schema.MedicalRecord{}, err
	}

	stored, updated, err := s.store.UpdateMedicalRecord(*r)
	if err != nil {
		return schema.MedicalRecord{}, err
	}
	if !updated {
		return schema.MedicalRecord{}, errors.Wrapf(ErrNotFound, "medical record %s %s", r.FirstName, r.LastName)
	}
	return stored, nil
}

func (s *Service) DeleteMedicalRecord(firstName, lastName string) error {
	if err := requireIdentity(firstName, lastName); err != nil {
		return err
	}

	deleted, err := s.store.DeleteMedicalRecord(firstName, lastName)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.Wrapf(ErrNotFound, "medical record %s %s", firstName, lastName)
	}
	return nil
}
