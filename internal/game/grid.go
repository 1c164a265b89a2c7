package game

import (
	"bufio"
	"io"
	"strconv"
)

// DiskRune 控制台上每种格子的字符
func DiskRune(s CellState) byte {
	switch s {
	case PlayerDisk:
		return 'X'
	case AIDisk:
		return 'O'
	}
	return '.'
}

// WriteGrid prints the board top-to-bottom (row Rows-1 first, so it looks the
// way the disks stack) followed by the zero-based column indices:
//
//	| . . . . . . . |
//	...
//	| X O . . . . . |
//	  0 1 2 3 4 5 6
func WriteGrid(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for r := Rows - 1; r >= 0; r-- {
		bw.WriteString("|")
		for c := 0; c < Columns; c++ {
			bw.WriteByte(' ')
			bw.WriteByte(DiskRune(b.Cells[r][c]))
		}
		bw.WriteString(" |\n")
	}
	bw.WriteString(" ")
	for c := 0; c < Columns; c++ {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(c))
	}
	bw.WriteString("\n")
	return bw.Flush()
}
