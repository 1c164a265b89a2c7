package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"connectfour_go/internal/game"
)

func newSim(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim)
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(s.Close)
	return s, sim
}

func nextEvent(t *testing.T, s *Screen) game.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ev, err := s.NextEvent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return ev
}

func TestRenderPlacesDisks(t *testing.T) {
	s, sim := newSim(t)
	b := game.NewBoard()
	b.Place(0, 3, game.PlayerDisk)
	b.Place(1, 3, game.AIDisk)
	if err := s.Render(game.Frame{Board: *b, Turn: game.PlayerDisk}); err != nil {
		t.Fatal(err)
	}
	// row 0 在最下面
	x := originX + 3*cellW + 1
	if r, _, _, _ := sim.GetContent(x, originY+game.Rows-1); r != 'X' {
		t.Fatalf("row 0 = %q", r)
	}
	if r, _, _, _ := sim.GetContent(x, originY+game.Rows-2); r != 'O' {
		t.Fatalf("row 1 = %q", r)
	}
	if r, _, _, _ := sim.GetContent(originX+1, originY+game.Rows); r != '0' {
		t.Fatalf("index line = %q", r)
	}
}

func TestKeysAndMouse(t *testing.T) {
	s, sim := newSim(t)
	_ = s.Render(game.Frame{Board: *game.NewBoard(), Turn: game.PlayerDisk})

	sim.InjectKey(tcell.KeyRune, '3', tcell.ModNone)
	if ev := nextEvent(t, s); ev.Kind != game.EventColumn || ev.Column != 3 {
		t.Fatalf("digit: %+v", ev)
	}

	// 光标停在刚选的 3 上，左移一格再回车
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if ev := nextEvent(t, s); ev.Kind != game.EventColumn || ev.Column != 2 {
		t.Fatalf("arrows: %+v", ev)
	}

	sim.InjectMouse(originX+5*cellW+1, originY+2, tcell.Button1, tcell.ModNone)
	if ev := nextEvent(t, s); ev.Kind != game.EventColumn || ev.Column != 5 {
		t.Fatalf("mouse: %+v", ev)
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if ev := nextEvent(t, s); ev.Kind != game.EventQuit {
		t.Fatalf("quit: %+v", ev)
	}
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if ev := nextEvent(t, s); ev.Kind != game.EventQuit {
		t.Fatalf("esc: %+v", ev)
	}
}

func TestNextEventCancelled(t *testing.T) {
	s, _ := newSim(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.NextEvent(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
