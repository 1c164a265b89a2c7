package main

import (
	"context"
	"math/rand"
	"testing"

	"connectfour_go/internal/game"
)

func TestPlayOneGame(t *testing.T) {
	a, b := engine{name: "A", depth: 2}, engine{name: "B", depth: 1}
	winner, rows, err := playOneGame(context.Background(), 1, a, b, 2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) == 0 || len(rows) > game.Rows*game.Columns {
		t.Fatalf("plies = %d", len(rows))
	}
	if rows[0].mover != "random" || rows[1].mover != "random" || (len(rows) > 2 && rows[2].mover != "A") {
		t.Fatalf("movers: %+v", rows[:3])
	}
	// 未分胜负时只能是满盘
	if winner == game.Empty && len(rows) != game.Rows*game.Columns {
		t.Fatalf("draw after %d plies", len(rows))
	}
}

func TestPlayOneGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := engine{name: "A", depth: 1}
	if _, _, err := playOneGame(ctx, 1, a, a, 0, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("cancelled battle finished")
	}
}
