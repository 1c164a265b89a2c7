package game

import (
	"context"

	"github.com/pkg/errors"
)

type EventKind int

const (
	EventColumn EventKind = iota // 玩家选中了一列
	EventQuit                    // 关闭窗口 / 退出
)

// Event is what a display hands back to the game: a zero-based column or a quit.
type Event struct {
	Kind   EventKind
	Column int
}

// Display is the boundary to the rendering/input layer.
type Display interface {
	Render(f Frame) error
	NextEvent(ctx context.Context) (Event, error)
	Notice(msg string)
}

// RunMatch drives one game on a blocking display until the game ends or the
// display reports quit. The final frame (with the outcome) is always rendered.
func RunMatch(ctx context.Context, gs *GameState, d Display) error {
	for {
		if err := d.Render(gs.Snapshot()); err != nil {
			return errors.Wrap(err, "render")
		}
		if gs.GameOver {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if gs.CurrentPlayer == AIDisk {
			if _, err := gs.PlayAI(ctx); err != nil {
				return err
			}
			continue
		}

		ev, err := d.NextEvent(ctx)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		switch ev.Kind {
		case EventQuit:
			return nil
		case EventColumn:
			if err := gs.PlayHuman(ev.Column); err != nil {
				if IsInvalidMove(err) {
					d.Notice(err.Error())
					continue
				}
				return err
			}
		}
	}
}
