package store

import (
	"context"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

const (
	storeLogPrefix = "store"
	defaultTimeout = 5 * time.Second
)

// Seeder supplies the template document used when the backend has none
type Seeder func() ([]byte, error)

// RecordStore is the safetynet main datastore
type RecordStore interface {
	Load() error
	Save() error
	Snapshot() schema.Dataset
	Revision() string
	Counts() (persons, firestations, medicalRecords int)
	Ping() error
	Close() error

	// Person
	FindPerson(firstName, lastName string) (schema.Person, bool)
	FindPersonsByAddress(address string) []schema.Person
	AddPerson(schema.Person) (bool, error)
	UpdatePerson(schema.Person) (schema.Person, bool, error)
	DeletePerson(firstName, lastName string) (bool, error)

	// Firestation
	FindFirestations(address string) []schema.FirestationMapping
	AddFirestation(schema.FirestationMapping) (bool, error)
	UpdateFirestation(schema.FirestationMapping) (schema.FirestationMapping, bool, error)
	DeleteFirestation(selector string) (int, error)

	// Medical record
	FindMedicalRecord(firstName, lastName string) (schema.MedicalRecord, bool)
	AddMedicalRecord(schema.MedicalRecord) (bool, error)
	UpdateMedicalRecord(schema.MedicalRecord) (schema.MedicalRecord, bool, error)
	DeleteMedicalRecord(firstName, lastName string) (bool, error)
}

// DataStore is an implementation of RecordStore keeping the three
// collections in memory and mirroring them to a Backend. Every operation is
// serialized behind mu.
type DataStore struct {
	mu       sync.Mutex
	backend  Backend
	seed     Seeder
	data     schema.Dataset
	revision string
}

func NewDataStore(backend Backend, seed Seeder) *DataStore {
	s := &DataStore{
		backend: backend,
		seed:    seed,
	}
	s.data.Normalize()
	return s
}

// Load replaces the in-memory collections with the backend document, writing
// the seed template first when the backend holds none.
func (s *DataStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.WithField("prefix", storeLogPrefix)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	data, err := s.backend.Read(ctx)
	if errors.Is(err, ErrDocumentNotExist) {
		logger.WithField("backend", s.backend.Name()).Info("document not found, seeding from template")
		data, err = s.seedLocked(ctx)
	}
	if err != nil {
		return storageError("load", err)
	}

	ds, err := decodeDocument(data)
	if err != nil {
		return storageError("load", err)
	}

	s.data = ds
	s.revision = documentRevision(data)

	logger.WithFields(log.Fields{
		"backend":        s.backend.Name(),
		"persons":        len(ds.Persons),
		"firestations":   len(ds.Firestations),
		"medicalrecords": len(ds.MedicalRecords),
		"revision":       s.revision,
	}).Info("document loaded")
	return nil
}

func (s *DataStore) seedLocked(ctx context.Context) ([]byte, error) {
	if s.seed == nil {
		return nil, ErrDocumentNotExist
	}

	data, err := s.seed()
	if err != nil {
		return nil, err
	}
	if _, err := decodeDocument(data); err != nil {
		return nil, err
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes the current collections to the backend
func (s *DataStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(s.data)
}

// persistLocked writes next to the backend and makes it the current state
// only when the write succeeded.
func (s *DataStore) persistLocked(next schema.Dataset) error {
	data, err := encodeDocument(next)
	if err != nil {
		return storageError("save", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := s.backend.Write(ctx, data); err != nil {
		log.WithField("prefix", storeLogPrefix).WithError(err).Error("fail to persist document")
		return storageError("save", err)
	}

	next.Normalize()
	s.data = next
	s.revision = documentRevision(data)
	return nil
}

// Snapshot returns a deep copy of the collections
func (s *DataStore) Snapshot() schema.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ds schema.Dataset
	if err := copier.CopyWithOption(&ds, &s.data, copier.Option{DeepCopy: true}); err != nil {
		log.WithField("prefix", storeLogPrefix).WithError(err).Error("fail to deep copy dataset")
		return cloneDataset(s.data)
	}
	ds.Normalize()
	return ds
}

func cloneDataset(src schema.Dataset) schema.Dataset {
	ds := schema.Dataset{
		Persons:        append([]schema.Person{}, src.Persons...),
		Firestations:   append([]schema.FirestationMapping{}, src.Firestations...),
		MedicalRecords: make([]schema.MedicalRecord, 0, len(src.MedicalRecords)),
	}
	for _, m := range src.MedicalRecords {
		ds.MedicalRecords = append(ds.MedicalRecords, cloneMedicalRecord(m))
	}
	return ds
}

// Revision identifies the content last loaded or persisted
func (s *DataStore) Revision() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *DataStore) Counts() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Persons), len(s.data.Firestations), len(s.data.MedicalRecords)
}

// Ping is to check the storage health status
func (s *DataStore) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.backend.Ping(ctx)
}

func (s *DataStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.backend.Close(ctx)
}

func sameIdentity(firstA, lastA, firstB, lastB string) bool {
	return utils.SameIdentity(firstA, lastA, firstB, lastB)
}
