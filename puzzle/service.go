// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Web entry points

The engine exposes two independent handlers.  SolveHandler runs
the full solve pipeline.  ViolationsHandler runs only duplicate
detection; the UI calls it on every cell edit to highlight
conflicts as the user types and to gate the solve action, so it
must stay separate from (and much cheaper than) a solve.

Both expect a POSTed JSON body with an 81-element values array.

*/

// A GridRequest is the posted form of a grid: 81 values in
// reading order, 0 meaning empty.
type GridRequest struct {
	Values []int `json:"values"`
}

// A SolveResponse is the serialized form of an Outcome.
type SolveResponse struct {
	Result     string       `json:"result"`
	Values     []int        `json:"values,omitempty"`
	Violations []Coordinate `json:"violations,omitempty"`
	ElapsedUS  int64        `json:"elapsedMicros"`
}

// A CheckResponse reports live validation of a partial grid.
// Valid is the gate the UI keys off; Violations only matters
// when Valid is false.
type CheckResponse struct {
	Valid      bool         `json:"valid"`
	Violations []Coordinate `json:"violations,omitempty"`
}

// NewSolveResponse converts an engine Outcome to its wire form.
func NewSolveResponse(o Outcome) SolveResponse {
	resp := SolveResponse{
		Result:    o.Result.String(),
		ElapsedUS: o.Elapsed.Microseconds(),
	}
	switch o.Result {
	case Solved:
		resp.Values = o.Grid.Values()
	case Invalid:
		resp.Violations = o.Violations.Coordinates()
	}
	return resp
}

// SolveHandler is a POST handler that reads a JSON-encoded grid
// from the request body and runs the solver on it.  The outcome
// is sent as a 200 response.  Malformed grids get a 400 response
// carrying the Error; the same error is returned to the golang
// caller.
func SolveHandler(w http.ResponseWriter, r *http.Request) error {
	g, err := ReadGrid(w, r)
	if err != nil {
		return err
	}
	return WriteJSON(NewSolveResponse(Solve(g)), http.StatusOK, w)
}

// ViolationsHandler is a POST handler that reads a JSON-encoded
// grid from the request body and responds with its duplicate
// violations, if any.
func ViolationsHandler(w http.ResponseWriter, r *http.Request) error {
	g, err := ReadGrid(w, r)
	if err != nil {
		return err
	}
	resp := CheckResponse{Valid: true}
	if vs, found := g.FindViolations(); found {
		resp.Valid = false
		resp.Violations = vs.Coordinates()
	}
	return WriteJSON(resp, http.StatusOK, w)
}

// ReadGrid decodes and validates the posted grid.  On failure
// the client has already been answered; the returned error is
// for the golang caller.
func ReadGrid(w http.ResponseWriter, r *http.Request) (Grid, error) {
	var req GridRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		return Grid{}, writeError(requestDecodingError, ErrorData{e.Error()}, w)
	}
	g, e := New(req.Values)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			// New only returns Errors; anything else is a bug here
			return Grid{}, writeError(errorFormatError, ErrorData{"ReadGrid", e.Error()}, w)
		}
		err.Message = err.Error()
		return Grid{}, WriteJSON(err, http.StatusBadRequest, w)
	}
	return g, nil
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData, w http.ResponseWriter) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Attribute: UnknownAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	}
	err.Message = err.Error()
	return WriteJSON(err, status, w)
}

// WriteJSON encodes and sends the client response.  If the
// object being sent is an Error, that same Error comes back to
// the handler so it can be returned to the golang caller; a nil
// return means a non-error response went out cleanly.
func WriteJSON(obj interface{}, status int, w http.ResponseWriter) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an encoding error, so the
			// JSON encoder itself is in trouble.  Pseudo-encode the
			// error by hand as a quoted string.
			status = http.StatusInternalServerError
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			return writeError(responseEncodingError, ErrorData{e.Error()}, w)
		}
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
