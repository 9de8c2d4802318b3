// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/siriousje/sodoku-solver/catalog"
	"github.com/siriousje/sodoku-solver/puzzle"
)

// These run without Redis or Postgres, so every handler falls
// back to the built-in catalog.

func TestGetCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/board", nil)
	w := httptest.NewRecorder()
	sid := getCookie(w, r)
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("TestGetCookie: session ID %q is not a UUID: %v", sid, err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName || cookies[0].Value != sid {
		t.Errorf("TestGetCookie: unexpected cookies %v", cookies)
	}

	// a request presenting that cookie keeps its session
	r = httptest.NewRequest("GET", "/api/board", nil)
	r.AddCookie(cookies[0])
	if again := getCookie(httptest.NewRecorder(), r); again != sid {
		t.Errorf("TestGetCookie: session changed from %q to %q", sid, again)
	}

	// a malformed cookie gets replaced
	r = httptest.NewRequest("GET", "/api/board", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-uuid"})
	if bad := getCookie(httptest.NewRecorder(), r); bad == "not-a-uuid" {
		t.Errorf("TestGetCookie: malformed session ID accepted")
	}
}

func TestListHandler(t *testing.T) {
	w := httptest.NewRecorder()
	listHandler(w, httptest.NewRequest("GET", "/api/boards", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("TestListHandler: status %d", w.Code)
	}
	var ids []string
	if e := json.NewDecoder(w.Body).Decode(&ids); e != nil {
		t.Fatalf("TestListHandler: undecodable response: %v", e)
	}
	if !reflect.DeepEqual(ids, catalog.IDs()) {
		t.Errorf("TestListHandler: got %v (expected %v)", ids, catalog.IDs())
	}
}

func TestBoardHandler(t *testing.T) {
	w := httptest.NewRecorder()
	boardHandler(w, httptest.NewRequest("GET", "/api/boards/2-star", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("TestBoardHandler: status %d", w.Code)
	}
	var b catalog.Board
	if e := json.NewDecoder(w.Body).Decode(&b); e != nil {
		t.Fatalf("TestBoardHandler: undecodable response: %v", e)
	}
	if b.ID != "2-star" || b.Rating != 2 || len(b.Values) != puzzle.CellCount {
		t.Errorf("TestBoardHandler: unexpected board %+v", b)
	}

	w = httptest.NewRecorder()
	boardHandler(w, httptest.NewRequest("GET", "/api/boards/9-star", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("TestBoardHandler: status %d for unknown board", w.Code)
	}
}

func TestCurrentBoardFollowsSelection(t *testing.T) {
	// select a board under one session cookie
	r := httptest.NewRequest("GET", "/api/boards/4-star", nil)
	w := httptest.NewRecorder()
	boardHandler(w, r)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("TestCurrentBoardFollowsSelection: %d cookies", len(cookies))
	}

	// the same cookie's current board is the selection
	r = httptest.NewRequest("GET", "/api/board", nil)
	r.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	currentBoardHandler(w, r)
	var b catalog.Board
	if e := json.NewDecoder(w.Body).Decode(&b); e != nil {
		t.Fatalf("TestCurrentBoardFollowsSelection: undecodable response: %v", e)
	}
	if b.ID != "4-star" {
		t.Errorf("TestCurrentBoardFollowsSelection: current board %q (expected %q)",
			b.ID, "4-star")
	}

	// a fresh session starts on the default board
	w = httptest.NewRecorder()
	currentBoardHandler(w, httptest.NewRequest("GET", "/api/board", nil))
	b = catalog.Board{}
	if e := json.NewDecoder(w.Body).Decode(&b); e != nil {
		t.Fatalf("TestCurrentBoardFollowsSelection: undecodable response: %v", e)
	}
	if b.ID != catalog.DefaultID {
		t.Errorf("TestCurrentBoardFollowsSelection: fresh board %q (expected %q)",
			b.ID, catalog.DefaultID)
	}
}

func TestSolveHandlerNoStorage(t *testing.T) {
	body, e := json.Marshal(puzzle.GridRequest{Values: catalog.Default().Values})
	if e != nil {
		t.Fatalf("TestSolveHandlerNoStorage: encode failed: %v", e)
	}
	w := httptest.NewRecorder()
	solveHandler(w, httptest.NewRequest("POST", "/api/solve", strings.NewReader(string(body))))
	if w.Code != http.StatusOK {
		t.Fatalf("TestSolveHandlerNoStorage: status %d", w.Code)
	}
	var resp puzzle.SolveResponse
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestSolveHandlerNoStorage: undecodable response: %v", e)
	}
	if resp.Result != "solved" || len(resp.Values) != puzzle.CellCount {
		t.Errorf("TestSolveHandlerNoStorage: unexpected response %+v", resp)
	}
}

func TestPostGate(t *testing.T) {
	h := post(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("TestPostGate: handler ran on GET")
	})
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/api/solve", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("TestPostGate: status %d (expected %d)",
			w.Code, http.StatusMethodNotAllowed)
	}
}
