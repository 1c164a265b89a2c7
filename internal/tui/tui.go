// Package tui is the terminal front end: a tcell screen that implements
// game.Display.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"connectfour_go/internal/game"
)

// 棋盘左上角在终端里的位置；每列占 3 个字符宽
const (
	originX = 2
	originY = 2
	cellW   = 3
)

var (
	styleDefault = tcell.StyleDefault
	styleBoard   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorGray)
	stylePlayer  = styleBoard.Foreground(tcell.ColorRed).Bold(true)
	styleAI      = styleBoard.Foreground(tcell.ColorYellow).Bold(true)
	styleWin     = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	cursor int
	notice string
	last   game.Frame
}

// New opens the real terminal.
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "open terminal")
	}
	return NewWithScreen(sc)
}

// NewWithScreen wraps an existing tcell screen (tests pass a simulation screen).
func NewWithScreen(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	sc.EnableMouse()
	sc.HideCursor()
	s := &Screen{
		screen: sc,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
		cursor: game.CenterColumn,
	}
	go sc.ChannelEvents(s.events, s.quit)
	return s, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

func (s *Screen) Render(f game.Frame) error {
	s.last = f
	s.draw()
	return nil
}

func (s *Screen) Notice(msg string) {
	s.notice = "Invalid move: " + msg
	s.draw()
}

// NextEvent blocks until the user picks a column or quits. Cursor movement
// and resizes are handled here and never reach the game.
func (s *Screen) NextEvent(ctx context.Context) (game.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return game.Event{}, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return game.Event{Kind: game.EventQuit}, nil
			}
			if out, done := s.handle(ev); done {
				return out, nil
			}
		}
	}
}

func (s *Screen) handle(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.draw()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.Event{Kind: game.EventQuit}, true
		case tcell.KeyLeft:
			s.moveCursor(-1)
		case tcell.KeyRight:
			s.moveCursor(1)
		case tcell.KeyEnter:
			return s.column(s.cursor), true
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q' || r == 'Q':
				return game.Event{Kind: game.EventQuit}, true
			case r == ' ':
				return s.column(s.cursor), true
			case r >= '0' && r <= '9':
				return s.column(int(r - '0')), true
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return game.Event{}, false
		}
		x, _ := ev.Position()
		if x < originX {
			return game.Event{}, false
		}
		return s.column((x - originX) / cellW), true
	}
	return game.Event{}, false
}

func (s *Screen) column(c int) game.Event {
	s.notice = ""
	if c >= 0 && c < game.Columns {
		s.cursor = c
	}
	return game.Event{Kind: game.EventColumn, Column: c}
}

func (s *Screen) moveCursor(d int) {
	s.cursor = (s.cursor + d + game.Columns) % game.Columns
	s.draw()
}

func (s *Screen) draw() {
	sc := s.screen
	sc.Clear()
	f := s.last

	win := map[game.Pos]bool{}
	if f.Outcome != nil && f.Outcome.HasLine {
		for _, p := range f.Outcome.Line {
			win[p] = true
		}
	}

	if f.Outcome == nil {
		s.put(originX+s.cursor*cellW+1, originY-1, "v", stylePlayer.Background(tcell.ColorReset))
	}
	for r := 0; r < game.Rows; r++ {
		y := originY + (game.Rows - 1 - r)
		for c := 0; c < game.Columns; c++ {
			x := originX + c*cellW
			st := f.Board.Get(r, c)
			style := styleBoard
			ch := "."
			switch st {
			case game.PlayerDisk:
				style, ch = stylePlayer, "X"
			case game.AIDisk:
				style, ch = styleAI, "O"
			}
			if win[game.Pos{Row: r, Col: c}] {
				style = styleWin
			}
			s.put(x, y, " "+ch+" ", style)
		}
	}
	y := originY + game.Rows
	for c := 0; c < game.Columns; c++ {
		s.put(originX+c*cellW+1, y, fmt.Sprint(c), styleDefault)
	}

	y += 2
	switch {
	case f.Outcome != nil:
		s.put(originX, y, f.Outcome.Message+"  (press any key)", styleDefault.Bold(true))
	case f.Turn == game.AIDisk:
		s.put(originX, y, "Computer is thinking...", styleDefault)
	default:
		s.put(originX, y, "Your move: 0-6, arrows+Enter or click. q/Esc quits.", styleDefault)
	}
	if s.notice != "" {
		s.put(originX, y+1, s.notice, styleNotice)
	}
	sc.Show()
}

func (s *Screen) put(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// WaitKey blocks until any key press or ctx is done; used after the game ends.
func (s *Screen) WaitKey(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
		}
	}
}
