// file: internal/game/evaluate.go
package game

// 评估权重
const (
	centerW   = 3
	fourW     = 100
	threeW    = 5
	twoW      = 2
	oppThreeW = -4
)

// Evaluate 静态评估：中心列加分 + 所有长度为 4 的窗口得分之和。
// 结果无上下界，可以为负。
func Evaluate(b *Board, disk CellState) int {
	return centerScore(b, disk) + windowsScore(b, disk)
}

func centerScore(b *Board, disk CellState) int {
	n := 0
	for r := 0; r < Rows; r++ {
		if b.Cells[r][CenterColumn] == disk {
			n++
		}
	}
	return n * centerW
}

func windowsScore(b *Board, disk CellState) int {
	total := 0
	var w [WinLen]CellState
	for _, d := range lineDirs {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				endR := r + d.Row*(WinLen-1)
				endC := c + d.Col*(WinLen-1)
				if endR < 0 || endR >= Rows || endC >= Columns {
					continue
				}
				for k := 0; k < WinLen; k++ {
					w[k] = b.Cells[r+d.Row*k][c+d.Col*k]
				}
				total += ScoreWindow(w, disk)
			}
		}
	}
	return total
}

// ScoreWindow scores four consecutive cells for disk.
func ScoreWindow(w [WinLen]CellState, disk CellState) int {
	opp := Opponent(disk)
	own, empty, theirs := 0, 0, 0
	for _, s := range w {
		switch s {
		case disk:
			own++
		case Empty:
			empty++
		case opp:
			theirs++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += fourW
	case own == 3 && empty == 1:
		score += threeW
	case own == 2 && empty == 2:
		score += twoW
	}
	// 对手三连且留一空位：单独扣分，不和上面的分支互斥
	if theirs == 3 && empty == 1 {
		score += oppThreeW
	}
	return score
}
