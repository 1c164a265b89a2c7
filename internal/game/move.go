package game

import (
	"github.com/pkg/errors"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game is over")
	ErrNotYourTurn      = errors.New("not the player's turn")
	ErrNoLegalMoves     = errors.New("no legal moves")
)

func Opponent(disk CellState) CellState {
	switch disk {
	case PlayerDisk:
		return AIDisk
	case AIDisk:
		return PlayerDisk
	}
	return Empty
}

// IsInvalidMove 判断 err 是否为可恢复的“非法落子”（越界或满列），人类输入路径只需忽略/重试
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrColumnOutOfRange) || errors.Is(err, ErrColumnFull)
}

// Drop is the checked placement used for human input: the board is left
// untouched unless the move is legal. Returns the landing row.
func (b *Board) Drop(col int, disk CellState) (int, error) {
	if !b.InRange(col) {
		return -1, errors.Wrapf(ErrColumnOutOfRange, "drop column %d", col)
	}
	if !b.IsValidMove(col) {
		return -1, errors.Wrapf(ErrColumnFull, "drop column %d", col)
	}
	row := b.AvailableRow(col)
	b.Place(row, col, disk)
	return row, nil
}
