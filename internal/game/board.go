// File game/board.go
package game

import (
	"strings"
)

// CellState represents the state of a cell on the board.
// It can be Empty, or occupied by the human (PlayerDisk) or the computer (AIDisk).
type CellState int

const (
	Empty CellState = iota
	PlayerDisk
	AIDisk
)

func (c CellState) String() string {
	switch c {
	case PlayerDisk:
		return "player"
	case AIDisk:
		return "ai"
	}
	return "empty"
}

// 棋盘尺寸固定 6×7，不支持其他规格
const (
	Rows         = 6
	Columns      = 7
	WinLen       = 4
	CenterColumn = Columns / 2
)

// Pos 是一个 (row, col) 坐标，row 0 为最底行
type Pos struct {
	Row, Col int
}

// Board is the 6×7 grid. Row 0 is the bottom row; within every column the
// filled cells form one contiguous run starting at row 0.
type Board struct {
	Cells [Rows][Columns]CellState
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) CellState { return b.Cells[row][col] }

// InRange reports whether col is a column index of the board.
func (b *Board) InRange(col int) bool {
	return col >= 0 && col < Columns
}

// IsValidMove reports whether the top cell of col is still empty.
// col must be in range.
func (b *Board) IsValidMove(col int) bool {
	return b.Cells[Rows-1][col] == Empty
}

// AvailableRow returns the lowest empty row of col, or -1 when the column is full.
// Callers are expected to check IsValidMove first.
func (b *Board) AvailableRow(col int) int {
	for r := 0; r < Rows; r++ {
		if b.Cells[r][col] == Empty {
			return r
		}
	}
	return -1
}

// Place sets a cell without any bounds or occupancy check.
func (b *Board) Place(row, col int, disk CellState) {
	b.Cells[row][col] = disk
}

// LegalMoves returns the playable columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if b.IsValidMove(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// Full 为 true 表示没有任何可走列（平局盘面）
func (b *Board) Full() bool {
	for c := 0; c < Columns; c++ {
		if b.IsValidMove(c) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. 数组是值拷贝，不共享底层存储
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Count 统计棋盘上 disk 方棋子数量
func (b *Board) Count(disk CellState) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if b.Cells[r][c] == disk {
				n++
			}
		}
	}
	return n
}

// SwapSides returns a copy with player and AI disks exchanged, so the engine
// (which always maximises for AIDisk) can pick moves for the human side.
func (b *Board) SwapSides() *Board {
	nb := b.Clone()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			nb.Cells[r][c] = Opponent(nb.Cells[r][c])
		}
	}
	return nb
}

// String renders the board top row first, see WriteGrid.
func (b *Board) String() string {
	var sb strings.Builder
	_ = WriteGrid(&sb, b)
	return sb.String()
}
