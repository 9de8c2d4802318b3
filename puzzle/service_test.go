// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// postGrid runs a handler against a POSTed values array and
// returns the response and the handler's golang-side error.
func postGrid(t *testing.T, handler func(http.ResponseWriter, *http.Request) error,
	body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	r := httptest.NewRequest("POST", "/api/solve", strings.NewReader(body))
	w := httptest.NewRecorder()
	err := handler(w, r)
	return w, err
}

func gridBody(t *testing.T, values []int) string {
	t.Helper()
	bytes, err := json.Marshal(GridRequest{Values: values})
	if err != nil {
		t.Fatalf("Failed to encode request body: %v", err)
	}
	return string(bytes)
}

func TestSolveHandler(t *testing.T) {
	w, err := postGrid(t, SolveHandler, gridBody(t, oneStarValues))
	if err != nil {
		t.Fatalf("TestSolveHandler: handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("TestSolveHandler: status %d (expected %d)", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("TestSolveHandler: content type %q", ct)
	}
	var resp SolveResponse
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestSolveHandler: undecodable response: %v", e)
	}
	if resp.Result != "solved" {
		t.Errorf("TestSolveHandler: result %q (expected %q)", resp.Result, "solved")
	}
	if !reflect.DeepEqual(resp.Values, oneStarSolvedValues) {
		t.Errorf("TestSolveHandler: values %v (expected %v)", resp.Values, oneStarSolvedValues)
	}
	if len(resp.Violations) != 0 {
		t.Errorf("TestSolveHandler: unexpected violations %v", resp.Violations)
	}
}

func TestSolveHandlerInvalidGrid(t *testing.T) {
	values := make([]int, CellCount)
	values[0], values[3] = 5, 5
	w, err := postGrid(t, SolveHandler, gridBody(t, values))
	if err != nil {
		t.Fatalf("TestSolveHandlerInvalidGrid: handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("TestSolveHandlerInvalidGrid: status %d (expected %d)",
			w.Code, http.StatusOK)
	}
	var resp SolveResponse
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestSolveHandlerInvalidGrid: undecodable response: %v", e)
	}
	if resp.Result != "invalid" {
		t.Errorf("TestSolveHandlerInvalidGrid: result %q (expected %q)",
			resp.Result, "invalid")
	}
	want := []Coordinate{{0, 0}, {0, 3}}
	if !reflect.DeepEqual(resp.Violations, want) {
		t.Errorf("TestSolveHandlerInvalidGrid: violations %v (expected %v)",
			resp.Violations, want)
	}
	if len(resp.Values) != 0 {
		t.Errorf("TestSolveHandlerInvalidGrid: unexpected values %v", resp.Values)
	}
}

func TestSolveHandlerBadBody(t *testing.T) {
	w, err := postGrid(t, SolveHandler, "this is not JSON")
	if err == nil {
		t.Fatalf("TestSolveHandlerBadBody: no handler error")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("TestSolveHandlerBadBody: status %d (expected %d)",
			w.Code, http.StatusBadRequest)
	}
	var resp Error
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestSolveHandlerBadBody: undecodable response: %v", e)
	}
	if resp.Scope != RequestScope || resp.Attribute != DecodeAttribute {
		t.Errorf("TestSolveHandlerBadBody: unexpected error: %v", resp)
	}
}

func TestSolveHandlerWrongSize(t *testing.T) {
	w, err := postGrid(t, SolveHandler, gridBody(t, []int{1, 2, 3}))
	if err == nil {
		t.Fatalf("TestSolveHandlerWrongSize: no handler error")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("TestSolveHandlerWrongSize: status %d (expected %d)",
			w.Code, http.StatusBadRequest)
	}
	var resp Error
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestSolveHandlerWrongSize: undecodable response: %v", e)
	}
	if resp.Scope != ArgumentScope || resp.Attribute != SizeAttribute {
		t.Errorf("TestSolveHandlerWrongSize: unexpected error: %v", resp)
	}
	if resp.Message == "" {
		t.Errorf("TestSolveHandlerWrongSize: empty message")
	}
}

func TestViolationsHandler(t *testing.T) {
	// a clean grid
	w, err := postGrid(t, ViolationsHandler, gridBody(t, oneStarValues))
	if err != nil {
		t.Fatalf("TestViolationsHandler: handler error: %v", err)
	}
	var resp CheckResponse
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestViolationsHandler: undecodable response: %v", e)
	}
	if !resp.Valid || len(resp.Violations) != 0 {
		t.Errorf("TestViolationsHandler: clean grid reported %+v", resp)
	}

	// the same grid with a conflict introduced
	values := append([]int(nil), oneStarValues...)
	values[1] = 4 // row 0 already holds a 4
	w, err = postGrid(t, ViolationsHandler, gridBody(t, values))
	if err != nil {
		t.Fatalf("TestViolationsHandler: handler error: %v", err)
	}
	resp = CheckResponse{}
	if e := json.NewDecoder(w.Body).Decode(&resp); e != nil {
		t.Fatalf("TestViolationsHandler: undecodable response: %v", e)
	}
	if resp.Valid {
		t.Errorf("TestViolationsHandler: conflicted grid reported valid")
	}
	want := []Coordinate{{0, 0}, {0, 1}}
	if !reflect.DeepEqual(resp.Violations, want) {
		t.Errorf("TestViolationsHandler: violations %v (expected %v)",
			resp.Violations, want)
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteJSON(map[string]int{"a": 1}, http.StatusOK, w); err != nil {
		t.Fatalf("TestWriteJSON: error on clean write: %v", err)
	}
	if got := w.Body.String(); got != `{"a":1}` {
		t.Errorf("TestWriteJSON: body %q", got)
	}

	// encoding an Error returns that same Error to the caller
	w = httptest.NewRecorder()
	in := sizeError(3)
	err := WriteJSON(in, http.StatusBadRequest, w)
	out, ok := err.(Error)
	if !ok {
		t.Fatalf("TestWriteJSON: returned error has type %T", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("TestWriteJSON: returned error %v (expected %v)", out, in)
	}
}

func TestWriteJSONUnencodable(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(func() {}, http.StatusOK, w)
	if err == nil {
		t.Fatalf("TestWriteJSONUnencodable: no error")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("TestWriteJSONUnencodable: status %d (expected %d)",
			w.Code, http.StatusInternalServerError)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Encode")) {
		t.Errorf("TestWriteJSONUnencodable: body %q", w.Body.String())
	}
}
