package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens a pgx pool against databaseURL and verifies it with a ping.
// Unqualified table names resolve in schema first; an empty schema keeps the
// server's search_path.
func NewPool(ctx context.Context, databaseURL, schema string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	if path := SearchPath(schema); path != "" {
		cfg.ConnConfig.RuntimeParams["search_path"] = path
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// SearchPath returns the search_path value that puts schema ahead of public,
// or "" when schema is empty or public itself.
func SearchPath(schema string) string {
	if schema == "" || schema == "public" {
		return ""
	}
	return QuoteSchema(schema) + ", public"
}

// QuoteSchema returns schema as a quoted SQL identifier.
func QuoteSchema(schema string) string {
	return pgx.Identifier{schema}.Sanitize()
}

// PostgresHealth reports pool liveness and connection statistics.
type PostgresHealth struct {
	Pool *pgxpool.Pool
}

func (h PostgresHealth) Driver() string { return "postgres" }

func (h PostgresHealth) Ping(ctx context.Context) error { return h.Pool.Ping(ctx) }

func (h PostgresHealth) Stats() interface{} {
	stat := h.Pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
	}
}

// PoolStats represents pgx connection pool statistics.
type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
}
