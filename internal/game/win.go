package game

// 四个方向：横、竖、正斜(/)、反斜(\)，统一用 (dRow, dCol) 表示
var lineDirs = [4]Pos{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // positive diagonal
	{-1, 1}, // negative diagonal
}

// HasFourInARow reports whether disk owns four consecutive cells in any
// orientation. It scans the whole board; it does not assume anything about
// the last move.
func HasFourInARow(b *Board, disk CellState) bool {
	_, ok := WinningLine(b, disk)
	return ok
}

// WinningLine returns the first four-in-a-row of disk found by the scan.
func WinningLine(b *Board, disk CellState) ([WinLen]Pos, bool) {
	var line [WinLen]Pos
	if disk == Empty {
		return line, false
	}
	for _, d := range lineDirs {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				endR := r + d.Row*(WinLen-1)
				endC := c + d.Col*(WinLen-1)
				if endR < 0 || endR >= Rows || endC >= Columns {
					continue
				}
				ok := true
				for k := 0; k < WinLen; k++ {
					if b.Cells[r+d.Row*k][c+d.Col*k] != disk {
						ok = false
						break
					}
				}
				if ok {
					for k := 0; k < WinLen; k++ {
						line[k] = Pos{Row: r + d.Row*k, Col: c + d.Col*k}
					}
					return line, true
				}
			}
		}
	}
	return line, false
}

// IsTerminal: 任一方连成四子，或棋盘已满
func IsTerminal(b *Board) bool {
	return HasFourInARow(b, PlayerDisk) || HasFourInARow(b, AIDisk) || b.Full()
}
