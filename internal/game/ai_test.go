package game

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

// plainMinimax 不剪枝的参考实现，用同样的严格比较选列
func plainMinimax(b *Board, depth int, maximizing bool) SearchResult {
	switch {
	case HasFourInARow(b, AIDisk):
		return SearchResult{Value: WinScore}
	case HasFourInARow(b, PlayerDisk):
		return SearchResult{Value: LossScore}
	case b.Full():
		return SearchResult{Value: DrawScore}
	case depth == 0:
		return SearchResult{Value: int64(Evaluate(b, AIDisk))}
	}
	best := SearchResult{HasColumn: true, Value: math.MaxInt64}
	disk := PlayerDisk
	if maximizing {
		best.Value = math.MinInt64
		disk = AIDisk
	}
	for _, col := range b.LegalMoves() {
		child := b.Clone()
		child.Place(child.AvailableRow(col), col, disk)
		v := plainMinimax(child, depth-1, !maximizing).Value
		if (maximizing && v > best.Value) || (!maximizing && v < best.Value) {
			best.Value = v
			best.Column = col
		}
	}
	return best
}

func TestSearchTakesImmediateWin(t *testing.T) {
	b := parseBoard(t,
		"XXX....",
		"OOO....",
	)
	for _, depth := range []int{1, 2, 3, 5} {
		res, _ := FindBestMove(b, depth)
		if !res.HasColumn || res.Column != 3 || res.Value != WinScore {
			t.Fatalf("depth %d: got %+v, want column 3 value %d", depth, res, WinScore)
		}
	}
}

func TestSearchBlocksThreat(t *testing.T) {
	b := parseBoard(t,
		"OO.....",
		"XXX....",
	)
	for _, depth := range []int{2, 3, 4} {
		res, _ := FindBestMove(b, depth)
		if res.Column != 3 {
			t.Fatalf("depth %d: got column %d, want 3 (block)", depth, res.Column)
		}
		if res.Value <= LossScore {
			t.Fatalf("depth %d: value %d, blocking should avoid the loss", depth, res.Value)
		}
	}
}

func TestSearchFullBoardIsDraw(t *testing.T) {
	b := drawBoard(t)
	res, _ := FindBestMove(b, DefaultDepth)
	if res.HasColumn || res.Value != 0 {
		t.Fatalf("got %+v, want no column and value 0", res)
	}
	res, _, err := FindBestMoveParallel(context.Background(), b, DefaultDepth, 4)
	if err != nil || res.HasColumn || res.Value != 0 {
		t.Fatalf("parallel: got %+v, %v", res, err)
	}
}

func TestTerminalPriority(t *testing.T) {
	// 两边都有四连时 AI 胜优先
	both := parseBoard(t,
		"OOOO...",
		"XXXX...",
	)
	if res := Minimax(both, 3, math.MinInt64, math.MaxInt64, false); res.HasColumn || res.Value != WinScore {
		t.Fatalf("both win: %+v", res)
	}
	lost := parseBoard(t,
		"OOO....",
		"XXXX...",
	)
	if res := Minimax(lost, 3, math.MinInt64, math.MaxInt64, true); res.HasColumn || res.Value != LossScore {
		t.Fatalf("player win: %+v", res)
	}
}

func TestDepthZeroUsesEvaluator(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, b := range RandomBoards(rng, 50, 20) {
		if IsTerminal(b) {
			continue
		}
		for _, maximizing := range []bool{true, false} {
			res := Minimax(b, 0, math.MinInt64, math.MaxInt64, maximizing)
			if res.HasColumn || res.Value != int64(Evaluate(b, AIDisk)) {
				t.Fatalf("depth 0: %+v, want evaluator %d", res, Evaluate(b, AIDisk))
			}
		}
	}
}

func TestEmptyBoardOpening(t *testing.T) {
	res, stats := FindBestMove(NewBoard(), 1)
	if res.Column != CenterColumn || res.Value != 3 {
		t.Fatalf("got %+v", res)
	}
	if stats.Nodes != 1+Columns {
		t.Fatalf("nodes = %d, want %d", stats.Nodes, 1+Columns)
	}
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i, b := range RandomBoards(rng, 60, 24) {
		for _, depth := range []int{1, 2, 3} {
			for _, maximizing := range []bool{true, false} {
				want := plainMinimax(b, depth, maximizing)
				got := Minimax(b, depth, math.MinInt64, math.MaxInt64, maximizing)
				if got != want {
					t.Fatalf("board %d depth %d max=%v: alpha-beta %+v, plain %+v\n%s", i, depth, maximizing, got, want, b)
				}
			}
		}
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, b := range RandomBoards(rng, 20, 20) {
		before := *b
		FindBestMove(b, 3)
		if _, _, err := FindBestMoveParallel(context.Background(), b, 3, 3); err != nil {
			t.Fatal(err)
		}
		if *b != before {
			t.Fatal("search mutated the board")
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i, b := range RandomBoards(rng, 60, 24) {
		for _, depth := range []int{1, 3, 4} {
			want, _ := FindBestMove(b, depth)
			got, stats, err := FindBestMoveParallel(context.Background(), b, depth, 4)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("board %d depth %d: parallel %+v, sequential %+v\n%s", i, depth, got, want, b)
			}
			if stats.Nodes < 1 {
				t.Fatalf("nodes = %d", stats.Nodes)
			}
		}
	}
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := FindBestMoveParallel(ctx, NewBoard(), 4, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	_, _, err = Search(ctx, NewBoard(), 4, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("sequential err = %v, want context.Canceled", err)
	}
}

func TestSearchForPlayerSide(t *testing.T) {
	b := parseBoard(t,
		"OOO....",
		"XXX....",
	)
	before := *b
	for _, workers := range []int{1, 3} {
		res, _, err := SearchFor(context.Background(), b, PlayerDisk, 2, workers)
		if err != nil {
			t.Fatal(err)
		}
		if res.Column != 3 || res.Value != WinScore {
			t.Fatalf("workers=%d: %+v, want column 3 with a win", workers, res)
		}
	}
	if *b != before {
		t.Fatal("SearchFor mutated its input")
	}
}
