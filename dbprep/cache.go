// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

// ClearCache empties the Redis cache.  Run after any change to
// the boards table, since cached boards never expire.
func ClearCache(redisURL string) error {
	conn, err := redis.DialURL(redisURL)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", redisURL, err)
	}
	defer conn.Close()
	if _, err := conn.Do("FLUSHALL"); err != nil {
		return fmt.Errorf("cache flush: %w", err)
	}
	return nil
}
