package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andreaskoumoundouros/BitChess/bitchess"
	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", bitchess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := bitchess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := bitchess.PerftDivide(board, *depth)
		keys := make([]bitchess.Move, 0, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		slices.SortFunc(keys, func(a, b bitchess.Move) int {
			return strings.Compare(a.UCI(), b.UCI())
		})
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m.UCI(), div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := bitchess.Perft(board, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, nps)
}
