package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Driver names accepted by OpenKV.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// Config selects and configures a KV backend.
type Config struct {
	Driver string       `toml:"driver"`
	File   FileConfig   `toml:"file"`
	SQLite SQLiteConfig `toml:"sqlite"`
	Redis  RedisConfig  `toml:"redis"`
	Mongo  MongoConfig  `toml:"mongo"`
}

type FileConfig struct {
	Dir string `toml:"dir"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig stores records as files under .formbuilder.
func DefaultConfig() Config {
	return Config{
		Driver: DriverFile,
		File:   FileConfig{Dir: ".formbuilder"},
		SQLite: SQLiteConfig{Path: "formbuilder.db"},
		Redis:  RedisConfig{Addr: "localhost:6379", Prefix: "formbuilder:"},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", Database: "formbuilder", Collection: "kv"},
	}
}

// OpenKV builds the backend named by cfg.Driver. Network backends are pinged
// before returning; the returned KV owns its connection.
func OpenKV(ctx context.Context, cfg Config) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverMemory:
		return NewMemoryKV(), nil
	case DriverFile, "":
		return NewFileKV(cfg.File.Dir)
	case DriverSQLite:
		return NewSQLiteKV(cfg.SQLite.Path)
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("store: redis ping %s: %w", cfg.Redis.Addr, err)
		}
		kv := NewRedisKV(client, cfg.Redis.Prefix)
		kv.owned = true
		return kv, nil
	case DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("store: mongo connect: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("store: mongo ping: %w", err)
		}
		kv := NewMongoKV(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
		kv.client = client
		return kv, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
