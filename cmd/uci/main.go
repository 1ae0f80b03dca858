package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andreaskoumoundouros/BitChess/bitchess"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	board := bitchess.NewBoard()
	engine := bitchess.NewEngine(bitchess.NewWeightedPolicy(time.Now().UnixNano()))
	engine.SetPosition(board)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		switch parts[0] {
		case "uci":
			fmt.Println("id name BitChess")
			fmt.Println("id author AndreasKoumoundouros")
			fmt.Println("option name UCI_Chess960 type check default false")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			board.Reset()
			engine.SetPosition(board)
		case "setoption":
			handleSetOption(board, parts[1:])
			engine.SetPosition(board)
		case "position":
			handlePosition(board, parts[1:])
			engine.SetPosition(board)
		case "go":
			move := engine.MakeMove()
			*board = *engine.Position()
			fmt.Printf("bestmove %s\n", move.UCI())
		case "stop":
			// No search runs in the background; nothing to stop.
		case "printboard":
			fmt.Print(board.String())
		case "quit":
			return
		}
	}
}

// handleSetOption recognizes "setoption name UCI_Chess960 value <bool>".
func handleSetOption(board *bitchess.Board, args []string) {
	if len(args) != 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	if args[1] == "UCI_Chess960" {
		board.Chess960 = args[3] == "true"
	}
}

// handlePosition implements "position startpos|fen <fields> [moves ...]".
func handlePosition(board *bitchess.Board, args []string) {
	if len(args) == 0 {
		return
	}
	var moves []string
	switch args[0] {
	case "startpos":
		board.Reset()
		if len(args) > 1 && args[1] == "moves" {
			moves = args[2:]
		}
	case "fen":
		if len(args) < 7 {
			return
		}
		fen := strings.Join(args[1:7], " ")
		if err := board.SetFromFEN(fen); err != nil {
			fmt.Fprintf(os.Stderr, "position: %v\n", err)
			return
		}
		if len(args) > 7 && args[7] == "moves" {
			moves = args[8:]
		}
	default:
		return
	}
	for _, token := range moves {
		m := bitchess.MoveFromUCI(token)
		if m.IsValid() {
			board.MakeMove(m)
		}
	}
}
