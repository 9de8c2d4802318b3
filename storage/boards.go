// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/siriousje/sodoku-solver/catalog"
	"github.com/siriousje/sodoku-solver/puzzle"
)

/*

Boards

Sample boards live in the Postgres boards table (seeded by
dbprep) and are cached in Redis under "BOARD:"+id.  Lookups read
through the cache; a cache problem is logged and ignored, since
the store always has the answer.

*/

// ErrNoBoard is returned when a board ID isn't in the store.
var ErrNoBoard = fmt.Errorf("no such board")

func boardKey(id string) string {
	return "BOARD:" + id
}

// BoardByID fetches one sample board, preferring the cache and
// falling back to the store, recaching after a store hit.
func BoardByID(ctx context.Context, id string) (catalog.Board, error) {
	if b, ok := cachedBoard(id); ok {
		return b, nil
	}
	var b catalog.Board
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		var values []int32
		row := tx.QueryRow(ctx,
			"SELECT rating, value_list FROM boards WHERE board_id = $1", id)
		if e := row.Scan(&b.Rating, &values); e != nil {
			if e == pgx.ErrNoRows {
				return ErrNoBoard
			}
			return e
		}
		b.ID = id
		b.Values = make([]int, len(values))
		for i, v := range values {
			b.Values[i] = int(v)
		}
		return nil
	})
	if err != nil {
		return catalog.Board{}, err
	}
	cacheBoard(b)
	return b, nil
}

// BoardIDs lists the stored board IDs ordered by rating.
func BoardIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		rows, e := tx.Query(ctx, "SELECT board_id FROM boards ORDER BY rating")
		if e != nil {
			return e
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if e := rows.Scan(&id); e != nil {
				return e
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func cachedBoard(id string) (catalog.Board, bool) {
	var b catalog.Board
	found := false
	err := rdExecute(func(conn redis.Conn) error {
		bytes, e := redis.Bytes(conn.Do("GET", boardKey(id)))
		if e == redis.ErrNil {
			return nil
		}
		if e != nil {
			return e
		}
		if e := json.Unmarshal(bytes, &b); e != nil {
			return e
		}
		found = true
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("board", id).Msg("board cache read")
		return catalog.Board{}, false
	}
	return b, found
}

func cacheBoard(b catalog.Board) {
	err := rdExecute(func(conn redis.Conn) error {
		bytes, e := json.Marshal(b)
		if e != nil {
			return e
		}
		_, e = conn.Do("SET", boardKey(b.ID), bytes)
		return e
	})
	if err != nil {
		log.Warn().Err(err).Str("board", b.ID).Msg("board cache write")
	}
}

/*

Solutions

Solve outcomes are cached under a key derived from the grid
itself, so any client posting the same board gets the cached
answer regardless of how it found the board.  Solutions are
never stored in Postgres: they are pure functions of the grid
and can always be recomputed.

*/

func solutionKey(g puzzle.Grid) string {
	key := make([]byte, 0, puzzle.CellCount)
	for _, v := range g.Values() {
		key = append(key, byte('0'+v))
	}
	return "SOL:" + string(key)
}

// CachedSolution looks up a previously computed solve response
// for this exact grid.
func CachedSolution(g puzzle.Grid) (puzzle.SolveResponse, bool) {
	var resp puzzle.SolveResponse
	found := false
	err := rdExecute(func(conn redis.Conn) error {
		bytes, e := redis.Bytes(conn.Do("GET", solutionKey(g)))
		if e == redis.ErrNil {
			return nil
		}
		if e != nil {
			return e
		}
		if e := json.Unmarshal(bytes, &resp); e != nil {
			return e
		}
		found = true
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("solution cache read")
		return puzzle.SolveResponse{}, false
	}
	return resp, found
}

// CacheSolution stores a solve response for this exact grid.
func CacheSolution(g puzzle.Grid, resp puzzle.SolveResponse) {
	err := rdExecute(func(conn redis.Conn) error {
		bytes, e := json.Marshal(resp)
		if e != nil {
			return e
		}
		_, e = conn.Do("SET", solutionKey(g), bytes)
		return e
	})
	if err != nil {
		log.Warn().Err(err).Msg("solution cache write")
	}
}
