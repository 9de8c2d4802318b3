// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package storage gives the solver service its persistence: a
// Postgres store of sample boards and a Redis cache of boards
// and computed solutions.  Both connections are package-global;
// call Connect once at startup and Close at shutdown.
package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	defaultRedisURL    = "redis://localhost:6379/"
	defaultDatabaseURL = "postgres://localhost/sodoku?sslmode=disable"
)

// RedisURL returns the cache URL from the environment, or the
// local default.
func RedisURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return defaultRedisURL
}

// DatabaseURL returns the Postgres URL from the environment, or
// the local default.
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return defaultDatabaseURL
}

var (
	rdPool *redis.Pool
	pgPool *pgxpool.Pool
)

// Connect establishes the Redis pool and the Postgres pool,
// pinging both so misconfiguration surfaces at startup rather
// than on the first request.
func Connect(ctx context.Context) error {
	redisURL, databaseURL := RedisURL(), DatabaseURL()

	rdPool = &redis.Pool{
		MaxIdle: 3,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(redisURL)
		},
	}
	if err := rdExecute(func(conn redis.Conn) error {
		_, e := conn.Do("PING")
		return e
	}); err != nil {
		rdPool = nil
		return fmt.Errorf("redis connect to %q: %w", redisURL, err)
	}
	log.Info().Str("url", redisURL).Msg("connected to redis cache")

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("postgres config for %q: %w", databaseURL, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("postgres connect to %q: %w", databaseURL, err)
	}
	pgPool = pool
	log.Info().Str("url", databaseURL).Msg("connected to postgres store")
	return nil
}

// Connected reports whether Connect has succeeded.  Callers that
// can run storage-free (serving the built-in catalog only) use
// this to decide.
func Connected() bool {
	return rdPool != nil && pgPool != nil
}

// Close releases both connection pools.  Safe to call even when
// Connect failed part way.
func Close() {
	if rdPool != nil {
		if err := rdPool.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis pool")
		}
		rdPool = nil
	}
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
}

// rdExecute runs the body with a pooled Redis connection.  A
// panic out of the redis client is recovered into the returned
// error, so callers only ever see error returns.
func rdExecute(body func(redis.Conn) error) (err error) {
	conn := rdPool.Get()
	defer func() {
		conn.Close()
		if p := recover(); p != nil {
			err = fmt.Errorf("redis panic: %v", p)
		}
	}()
	return body(conn)
}

// pgExecute runs the body inside a Postgres transaction,
// committing on success and rolling back on error or panic.
func pgExecute(ctx context.Context, body func(pgx.Tx) error) (err error) {
	tx, err := pgPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres begin: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("postgres panic: %v", p)
		}
		if err != nil {
			if e := tx.Rollback(ctx); e != nil && e != pgx.ErrTxClosed {
				log.Warn().Err(e).Msg("transaction rollback")
			}
			return
		}
		err = tx.Commit(ctx)
	}()
	return body(tx)
}
