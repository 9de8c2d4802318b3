// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// The sodoku command runs the solver web service.  It serves
// the sample board catalog and the solve/check API, using Redis
// and Postgres when they are reachable and falling back to the
// built-in catalog when they are not.
package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siriousje/sodoku-solver/catalog"
	"github.com/siriousje/sodoku-solver/puzzle"
	"github.com/siriousje/sodoku-solver/storage"
)

const cookieName = "sodokuID"
const cookiePath = "/"

// A solverSession remembers which board a browser is working
// on.  Sessions are in-memory only: one server instance, no
// persistence across restarts.
type solverSession struct {
	sessionID string
	boardID   string
}

var (
	sessions     = make(map[string]*solverSession)
	sessionMutex sync.RWMutex
)

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	if sc, e := r.Cookie(cookieName); e == nil && sc.Value != "" {
		if _, e := uuid.Parse(sc.Value); e == nil {
			return sc.Value
		}
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath})
	return sid
}

// sessionSelect finds or creates the session for this request.
// Selection can happen concurrently from simultaneous
// goroutines, so it is interlocked.
func sessionSelect(w http.ResponseWriter, r *http.Request) *solverSession {
	sessionID := getCookie(w, r)
	sessionMutex.RLock()
	session, ok := sessions[sessionID]
	sessionMutex.RUnlock()
	if ok && session != nil {
		return session
	}
	session = &solverSession{sessionID: sessionID, boardID: catalog.DefaultID}
	sessionMutex.Lock()
	sessions[sessionID] = session
	sessionMutex.Unlock()
	log.Info().Str("session", sessionID).Msg("new session")
	return session
}

// boardIDs lists the available boards, from the store when
// connected and from the built-in catalog otherwise.
func boardIDs(ctx context.Context) []string {
	if storage.Connected() {
		ids, err := storage.BoardIDs(ctx)
		if err == nil {
			return ids
		}
		log.Warn().Err(err).Msg("board list from store")
	}
	return catalog.IDs()
}

// boardByID finds one board, from the store when connected and
// from the built-in catalog otherwise.
func boardByID(ctx context.Context, id string) (catalog.Board, bool) {
	if storage.Connected() {
		b, err := storage.BoardByID(ctx, id)
		if err == nil {
			return b, true
		}
		if err != storage.ErrNoBoard {
			log.Warn().Err(err).Str("board", id).Msg("board from store")
		}
		return catalog.Board{}, false
	}
	return catalog.Lookup(id)
}

func listHandler(w http.ResponseWriter, r *http.Request) {
	puzzle.WriteJSON(boardIDs(r.Context()), http.StatusOK, w)
}

// boardHandler serves GET /api/boards/{id} and remembers the
// selection in the session.
func boardHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/boards/")
	b, ok := boardByID(r.Context(), id)
	if !ok {
		puzzle.WriteJSON(puzzle.Error{
			Scope:     puzzle.RequestScope,
			Attribute: puzzle.ValueAttribute,
			Condition: puzzle.GeneralCondition,
			Message:   "no board with ID " + id,
		}, http.StatusNotFound, w)
		return
	}
	session := sessionSelect(w, r)
	session.boardID = b.ID
	puzzle.WriteJSON(b, http.StatusOK, w)
}

// currentBoardHandler serves GET /api/board: the session's
// current selection.
func currentBoardHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionSelect(w, r)
	b, ok := boardByID(r.Context(), session.boardID)
	if !ok {
		// the selection disappeared from the store; fall back
		session.boardID = catalog.DefaultID
		b = catalog.Default()
	}
	puzzle.WriteJSON(b, http.StatusOK, w)
}

// solveHandler runs the solver, consulting the solution cache
// on both sides of the call when storage is up.  Solutions are
// pure functions of the grid, so a cached answer is never
// stale.
func solveHandler(w http.ResponseWriter, r *http.Request) {
	g, err := puzzle.ReadGrid(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("solve request rejected")
		return
	}
	if storage.Connected() {
		if resp, ok := storage.CachedSolution(g); ok {
			log.Info().Str("result", resp.Result).Msg("solved from cache")
			puzzle.WriteJSON(resp, http.StatusOK, w)
			return
		}
	}
	resp := puzzle.NewSolveResponse(puzzle.Solve(g))
	if storage.Connected() {
		storage.CacheSolution(g, resp)
	}
	log.Info().
		Str("result", resp.Result).
		Int64("elapsedMicros", resp.ElapsedUS).
		Msg("solved")
	puzzle.WriteJSON(resp, http.StatusOK, w)
}

func checkHandler(w http.ResponseWriter, r *http.Request) {
	if err := puzzle.ViolationsHandler(w, r); err != nil {
		log.Warn().Err(err).Msg("check request rejected")
	}
}

// post gates a handler to POST requests.
func post(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("reading .env")
	}
	setupLogging()

	ctx := context.Background()
	if err := storage.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("storage unavailable, serving built-in catalog only")
		storage.Close()
	} else {
		defer storage.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/boards", listHandler)
	mux.HandleFunc("/api/boards/", boardHandler)
	mux.HandleFunc("/api/board", currentBoardHandler)
	mux.HandleFunc("/api/solve", post(solveHandler))
	mux.HandleFunc("/api/check", post(checkHandler))

	// Heroku-style port sensing: a PORT variable means a true
	// server, no PORT means local dev mode
	addr := os.Getenv("PORT")
	if addr == "" {
		addr = "localhost:8080"
	} else {
		addr = ":" + addr
	}

	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, requestLogger(mux)); err != nil {
		log.Fatal().Err(err).Msg("listener failure")
	}
}

// setupLogging picks human-readable console output for dev runs
// and JSON for server runs, with the level set by LOG_LEVEL.
func setupLogging() {
	if os.Getenv("PORT") == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := zerolog.ParseLevel(lvl)
		if err != nil {
			log.Warn().Str("level", lvl).Msg("unknown LOG_LEVEL, using info")
			parsed = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(parsed)
	}
}

// requestLogger logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}
