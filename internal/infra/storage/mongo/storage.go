// Package mongo implements indexer.Storage on a MongoDB collection. Both
// record kinds share the collection and are told apart by their kind field.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DefaultDatabase   = "solindex"
	DefaultCollection = "indexed_data"
)

// ErrNotConnected is returned by Save and Query before Connect succeeds.
var ErrNotConnected = errors.New("mongo storage not connected")

var indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "signature", Value: 1}}},
	{Keys: bson.D{{Key: "address", Value: 1}}},
	{Keys: bson.D{{Key: "slot", Value: 1}}},
	{Keys: bson.D{{Key: "timestamp", Value: -1}}},
}

type storage struct {
	mu   sync.RWMutex
	coll *mongo.Collection

	uri        string
	database   string
	collection string
	client     *mongo.Client // set by WithClient; not disconnected by Disconnect
}

var _ indexer.Storage = (*storage)(nil)

func (s *storage) connection() (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.coll == nil {
		return nil, ErrNotConnected
	}
	return s.coll, nil
}

// Connect dials the server, unless a client was provided, and creates the
// collection indexes.
func (s *storage) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coll != nil {
		return nil
	}

	client := s.client
	if client == nil {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
		if err != nil {
			return err
		}
		client = c
	}

	closeOwned := func() {
		if client != s.client {
			_ = client.Disconnect(ctx)
		}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		closeOwned()
		return err
	}

	coll := client.Database(s.database).Collection(s.collection)
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		closeOwned()
		return fmt.Errorf("create indexes: %w", err)
	}

	s.coll = coll
	return nil
}

func (s *storage) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coll == nil {
		return nil
	}

	client := s.coll.Database().Client()
	s.coll = nil

	if client == s.client {
		return nil
	}
	return client.Disconnect(ctx)
}

func (s *storage) Save(ctx context.Context, records ...indexer.Record) error {
	coll, err := s.connection()
	if err != nil {
		return err
	}

	docs := make([]any, 0, len(records))
	for _, r := range records {
		doc, err := toDocument(r)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	switch len(docs) {
	case 0:
		return nil
	case 1:
		_, err = coll.InsertOne(ctx, docs[0])
	default:
		_, err = coll.InsertMany(ctx, docs)
	}
	return err
}

// Query runs filter as an equality query. Documents of unknown shape are skipped.
func (s *storage) Query(ctx context.Context, filter indexer.Filter) ([]indexer.Record, error) {
	coll, err := s.connection()
	if err != nil {
		return nil, err
	}

	query, err := toBSONFilter(filter)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	var raws []bson.Raw
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}

	records := make([]indexer.Record, 0, len(raws))
	for _, raw := range raws {
		r, err := fromDocument(raw)
		if err != nil {
			logger.Warn(ctx, "skipping malformed document", "mongo.collection", s.collection, "error", err)
			continue
		}
		records = append(records, r)
	}

	return records, nil
}

type config struct {
	database   string
	collection string
	client     *mongo.Client
}

type Option func(*config)

// New creates a MongoDB storage for uri. The client is created by Connect.
func New(uri string, opts ...Option) *storage {
	cfg := config{
		database:   DefaultDatabase,
		collection: DefaultCollection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &storage{
		uri:        uri,
		database:   cfg.database,
		collection: cfg.collection,
		client:     cfg.client,
	}
}

// WithDatabase overrides DefaultDatabase. Empty keeps the default.
func WithDatabase(name string) Option {
	return func(c *config) {
		if name != "" {
			c.database = name
		}
	}
}

// WithCollection overrides DefaultCollection. Empty keeps the default.
func WithCollection(name string) Option {
	return func(c *config) {
		if name != "" {
			c.collection = name
		}
	}
}

// WithClient uses an already configured client instead of dialing uri.
// The caller keeps ownership of it.
func WithClient(client *mongo.Client) Option {
	return func(c *config) {
		c.client = client
	}
}
