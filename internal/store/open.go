package store

import (
	"context"
	"fmt"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	DataDir     string
	SQLitePath  string
	Postgres    PostgresConfig
	RedisURL    string
	RedisPrefix string
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile, "":
		return NewFile(opts.DataDir)
	case DriverSQLite:
		return OpenSQLite(opts.SQLitePath)
	case DriverPostgres:
		return OpenPostgres(opts.Postgres)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
