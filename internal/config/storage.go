package config

import (
	"fmt"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/infra/storage/jsonfile"
	"github.com/gabapcia/solindex/internal/infra/storage/memory"
	"github.com/gabapcia/solindex/internal/infra/storage/mongo"
	"github.com/gabapcia/solindex/internal/infra/storage/postgres"
	"github.com/gabapcia/solindex/internal/infra/storage/redis"
)

// NewStorage builds the storage adapter selected by c. Connections are opened
// by the engine on Start.
func (c StorageConfig) NewStorage() (indexer.Storage, error) {
	switch c.Kind {
	case "", "memory":
		return memory.New(), nil
	case "json":
		return jsonfile.New(c.Path)
	case "redis":
		return redis.NewClient(c.Redis.Addr, c.Redis.Username, c.Redis.Password, c.Redis.DB,
			redis.WithMode(redis.Mode(c.Redis.Mode)),
			redis.WithKey(c.Redis.Key),
		)
	case "postgres":
		return postgres.New(c.Postgres.DSN), nil
	case "mongo":
		return mongo.New(c.Mongo.URI,
			mongo.WithDatabase(c.Mongo.Database),
			mongo.WithCollection(c.Mongo.Collection),
		), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", c.Kind)
	}
}
