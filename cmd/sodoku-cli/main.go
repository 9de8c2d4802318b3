// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// Command-line client for the solver.  It works through the
// same board sources as the web service: Postgres and Redis
// when reachable, the built-in catalog otherwise.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siriousje/sodoku-solver/catalog"
	"github.com/siriousje/sodoku-solver/puzzle"
	"github.com/siriousje/sodoku-solver/storage"
)

func main() {
	godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx := context.Background()
	if err := storage.Connect(ctx); err != nil {
		storage.Close()
	}
	defer storage.Close()
	shutdownOnSignal()

	if err := listener(os.Stdout, os.Stdin); err != nil {
		log.Error().Err(err).Msg("CLI failure")
		storage.Close()
		os.Exit(1)
	}
}

// shutdownOnSignal closes the storage connections before dying
// on an interrupt.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		s := <-c
		storage.Close()
		fmt.Printf("\nExiting on %v.\n", s)
		os.Exit(0)
	}()
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "sodoku> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, strings.ToLower(arg))
				}
			}
			dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*workspace, *os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"assign", "cell value", "put a value (0 clears) in a cell, 0-80 reading order", assignHandler},
		{"boards", "", "list the available boards", boardsHandler},
		{"check", "", "list rule violations in the working grid", checkHandler},
		{"help", "", "show this usage summary", helpHandler},
		{"reset", "", "restore the working grid to the board values", resetHandler},
		{"show", "", "show the working grid", showHandler},
		{"solve", "[boardID|all]", "solve the working grid or the named board(s)", solveHandler},
		{"use", "boardID", "start working on a board", useHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(w, "Error in %q: %v\n", r.inline, err)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w)
		return
	}
	ci.handler(current, w, r)
}

func usageHandler(message string, w *os.File) {
	fmt.Fprintf(w, "Error: %s\n", message)
	printUsage(w)
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, "Usage:\n")
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "  %s %s - %s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  quit (or exit) - leave the CLI\n")
}

/*

The workspace

*/

// A workspace is the CLI analog of a web session: the chosen
// board and a working grid the user can edit.
type workspace struct {
	boardID string
	grid    puzzle.Grid
}

var current = newWorkspace()

func newWorkspace() *workspace {
	ws := &workspace{}
	ws.use(catalog.Default())
	return ws
}

func (ws *workspace) use(b catalog.Board) {
	g, err := puzzle.New(b.Values)
	if err != nil {
		// catalog and store boards are validated at seed time
		panic(err)
	}
	ws.boardID, ws.grid = b.ID, g
}

// boardIDs lists the available boards, preferring the store.
func boardIDs() []string {
	if storage.Connected() {
		if ids, err := storage.BoardIDs(context.Background()); err == nil {
			return ids
		}
	}
	return catalog.IDs()
}

// boardByID finds one board, preferring the store.
func boardByID(id string) (catalog.Board, bool) {
	if storage.Connected() {
		if b, err := storage.BoardByID(context.Background(), id); err == nil {
			return b, true
		}
		return catalog.Board{}, false
	}
	return catalog.Lookup(id)
}

/*

Command handlers

*/

func boardsHandler(ws *workspace, w *os.File, r *request) {
	fmt.Fprintf(w, "Available boards: %s\n", strings.Join(boardIDs(), ", "))
	fmt.Fprintf(w, "Working on: %s\n", ws.boardID)
}

func useHandler(ws *workspace, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler("use needs a board ID", w)
		return
	}
	b, ok := boardByID(r.args[0])
	if !ok {
		fmt.Fprintf(w, "No board with ID %q.\n", r.args[0])
		return
	}
	ws.use(b)
	fmt.Fprintf(w, "Working on %s:\n%v", ws.boardID, ws.grid)
}

func showHandler(ws *workspace, w *os.File, r *request) {
	fmt.Fprintf(w, "%v", ws.grid)
}

func resetHandler(ws *workspace, w *os.File, r *request) {
	b, ok := boardByID(ws.boardID)
	if !ok {
		b = catalog.Default()
	}
	ws.use(b)
	fmt.Fprintf(w, "Restored %s:\n%v", ws.boardID, ws.grid)
}

func assignHandler(ws *workspace, w *os.File, r *request) {
	if len(r.args) != 2 {
		usageHandler("assign needs a cell index and a value", w)
		return
	}
	cell, err := strconv.Atoi(r.args[0])
	if err != nil || cell < 0 || cell >= puzzle.CellCount {
		usageHandler(fmt.Sprintf("%q is not a cell index (0-80)", r.args[0]), w)
		return
	}
	value, err := strconv.Atoi(r.args[1])
	if err != nil || value < 0 || value > puzzle.SideLen {
		usageHandler(fmt.Sprintf("%q is not a value (0-9)", r.args[1]), w)
		return
	}
	ws.grid[cell/puzzle.SideLen][cell%puzzle.SideLen] = value
	fmt.Fprintf(w, "%v", ws.grid)
	// mirror the live conflict highlighting of the web UI
	if vs, found := ws.grid.FindViolations(); found {
		fmt.Fprintf(w, "Conflicts:")
		for _, c := range vs.Coordinates() {
			fmt.Fprintf(w, " (%d,%d)", c.Row, c.Col)
		}
		fmt.Fprintf(w, "\n")
	}
}

func checkHandler(ws *workspace, w *os.File, r *request) {
	vs, found := ws.grid.FindViolations()
	if !found {
		fmt.Fprintf(w, "No rule violations.\n")
		return
	}
	fmt.Fprintf(w, "Duplicate values at:")
	for _, c := range vs.Coordinates() {
		fmt.Fprintf(w, " (%d,%d)", c.Row, c.Col)
	}
	fmt.Fprintf(w, "\n")
}

// solveHandler runs the solver over the working grid, a named
// board, or every available board, printing before and after
// grids with timing.
func solveHandler(ws *workspace, w *os.File, r *request) {
	if len(r.args) == 0 {
		fmt.Fprintf(w, "Solving the working grid:\n%v", ws.grid)
		fmt.Fprintf(w, "%v", puzzle.Solve(ws.grid))
		return
	}
	ids := r.args[:1]
	if r.args[0] == "all" {
		ids = boardIDs()
	}
	for _, id := range ids {
		b, ok := boardByID(id)
		if !ok {
			fmt.Fprintf(w, "No board with ID %q.\n", id)
			continue
		}
		g, err := puzzle.New(b.Values)
		if err != nil {
			fmt.Fprintf(w, "Bad board %q: %v\n", id, err)
			continue
		}
		fmt.Fprintf(w, "Solving %s:\n%v", id, g)
		fmt.Fprintf(w, "%v", puzzle.Solve(g))
	}
}

func helpHandler(ws *workspace, w *os.File, r *request) {
	printUsage(w)
}
