// Package console is the plain line-based front end: it prints the grid to
// an io.Writer and reads one column number per line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour_go/internal/game"
)

type Console struct {
	out   io.Writer
	lines chan string
}

// New starts reading lines from in; the reader goroutine ends at EOF.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{out: out, lines: make(chan string)}
	go func() {
		defer close(c.lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			c.lines <- sc.Text()
		}
	}()
	return c
}

func (c *Console) Render(f game.Frame) error {
	if f.LastMove != nil && f.Board.Get(f.LastMove.Row, f.LastMove.Col) == game.AIDisk {
		if _, err := fmt.Fprintf(c.out, "Computer plays column %d\n", f.LastMove.Col); err != nil {
			return err
		}
	}
	if err := game.WriteGrid(c.out, &f.Board); err != nil {
		return err
	}
	if f.Outcome != nil {
		_, err := fmt.Fprintln(c.out, f.Outcome.Message)
		return err
	}
	return nil
}

// NextEvent prompts and reads until a number or quit arrives. Numbers are
// passed through unchecked; range and full-column checks belong to the game.
func (c *Console) NextEvent(ctx context.Context) (game.Event, error) {
	for {
		if _, err := fmt.Fprintf(c.out, "Your move (0-%d, q to quit): ", game.Columns-1); err != nil {
			return game.Event{}, err
		}
		select {
		case <-ctx.Done():
			return game.Event{}, ctx.Err()
		case line, ok := <-c.lines:
			if !ok {
				return game.Event{Kind: game.EventQuit}, nil
			}
			line = strings.TrimSpace(line)
			switch strings.ToLower(line) {
			case "":
				continue
			case "q", "quit", "exit":
				return game.Event{Kind: game.EventQuit}, nil
			}
			col, err := strconv.Atoi(line)
			if err != nil {
				c.Notice(fmt.Sprintf("%q is not a column", line))
				continue
			}
			return game.Event{Kind: game.EventColumn, Column: col}, nil
		}
	}
}

func (c *Console) Notice(msg string) {
	fmt.Fprintln(c.out, "Invalid move:", msg)
}
