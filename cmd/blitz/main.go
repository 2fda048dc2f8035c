// blitz is a diagnostic front end for the blitz-chess rules core. It renders
// the starting position, lists its legal moves, and runs perft node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/urav06/blitz-chess/internal/engine"
)

const programVersion = "0.1.0"

var (
	showMoves  = flag.Bool("moves", false, "list the legal moves of the starting position")
	perftDepth = flag.Int("perft", 0, "run perft to the given depth from the starting position")
	parallel   = flag.Bool("parallel", false, "split perft root moves across goroutines")
	version    = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("blitz version %s\n", programVersion)
		os.Exit(0)
	}

	pos := engine.NewInitialPosition()
	fmt.Println(pos.Board.String())
	fmt.Printf("\n%s to move\n", pos.ToMove)

	if *showMoves {
		listMoves(pos)
	}
	if *perftDepth > 0 {
		runPerft(pos, *perftDepth, *parallel)
	}
}

func listMoves(pos engine.Position) {
	moves := engine.LegalMoves(&pos)
	fmt.Printf("\n%d legal moves:\n", len(moves))
	for _, m := range moves {
		piece, _ := pos.Board.PieceAt(m.Source())
		fmt.Printf("  %s %s\n", piece, m)
	}
}

func runPerft(pos engine.Position, depth int, parallel bool) {
	fmt.Println()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		var nodes int64
		if parallel {
			nodes = engine.PerftParallel(pos, d)
		} else {
			nodes = engine.Perft(pos, d)
		}
		fmt.Printf("perft(%d) = %d  (%v)\n", d, nodes, time.Since(start).Round(time.Millisecond))
	}
}
