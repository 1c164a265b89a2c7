// File ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"connectfour_go/internal/game"
)

// columnAt 把屏幕 x 坐标换算成列号：x / cellSize 向下取整，窗口外为 -1
func columnAt(x, cellSize int) int {
	if x < 0 || cellSize <= 0 {
		return -1
	}
	return x / cellSize
}

var (
	digitKeys  = [...]ebiten.Key{ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9}
	numpadKeys = [...]ebiten.Key{ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9}
)

// pressedColumn 检查数字键 0..9，返回本帧按下的数字
func pressedColumn() (int, bool) {
	for k := range digitKeys {
		if inpututil.IsKeyJustPressed(digitKeys[k]) || inpututil.IsKeyJustPressed(numpadKeys[k]) {
			return k, true
		}
	}
	return 0, false
}

// handleInput 处理鼠标点击/数字键，把选中的列交给 GameState
func (gs *GameScreen) handleInput() {
	mx, _ := ebiten.CursorPosition()
	gs.hoverCol = columnAt(mx, gs.cellSize)

	col, ok := pressedColumn()
	if !ok {
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return
		}
		col = gs.hoverCol
	}

	if err := gs.state.PlayHuman(col); err != nil {
		if game.IsInvalidMove(err) {
			gs.showNotice("Invalid move: " + err.Error())
			return
		}
		gs.log.Warn().Err(err).Int("column", col).Msg("click ignored")
		return
	}
	gs.notice = ""
}
