package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoLogPrefix     = "mongo"
	documentCollection = "documents"
)

type mongoDocument struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Revision  string    `bson:"revision"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend keeps the document as a single record of the documents
// collection, keyed by name.
type MongoBackend struct {
	client   *mongo.Client
	database string
	key      string
}

// NewMongoBackend - return a backend storing the document named key
func NewMongoBackend(client *mongo.Client, database, key string) *MongoBackend {
	if key == "" {
		key = "safetynet"
	}
	return &MongoBackend{
		client:   client,
		database: database,
		key:      key,
	}
}

func (m *MongoBackend) Name() string { return "mongo" }

func (m *MongoBackend) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(documentCollection)
}

func (m *MongoBackend) Read(ctx context.Context) ([]byte, error) {
	var doc mongoDocument
	if err := m.collection().FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDocumentNotExist
		}
		return nil, errors.Wrapf(err, "could not find document %s", m.key)
	}
	return []byte(doc.Content), nil
}

func (m *MongoBackend) Write(ctx context.Context, data []byte) error {
	doc := mongoDocument{
		ID:        m.key,
		Content:   string(data),
		Revision:  documentRevision(data),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection().ReplaceOne(ctx, bson.M{"_id": m.key}, doc, opts); err != nil {
		return errors.Wrapf(err, "could not replace document %s", m.key)
	}
	return nil
}

// Ping - ping mongo db
func (m *MongoBackend) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m *MongoBackend) Close(ctx context.Context) error {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	return m.client.Disconnect(ctx)
}
