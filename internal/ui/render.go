// File /ui/render.go
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"connectfour_go/internal/game"
)

// 渐变 shader：左上亮、右下暗
const gradKage = `
package main

var UBright float // 左上角亮度，比如 1.35
var UDark   float // 右下角亮度，比如 0.70

func Fragment(pos vec4, uv vec2, col vec4) vec4 {
    c := imageSrc0At(uv)
    t := clamp((uv.x + uv.y) * 0.5, 0.0, 1.0)
    f := mix(UBright, UDark, t)
    return vec4(c.rgb * f, c.a)
}
`

var (
	gradShader *ebiten.Shader

	boardBlue = color.RGBA{0x1f, 0x4e, 0xa8, 0xff}
	holeColor = color.RGBA{0x0c, 0x14, 0x24, 0xff}
	bgColor   = color.RGBA{0x0c, 0x14, 0x24, 0xff}
	lineColor = color.RGBA{0xff, 0xff, 0xff, 0xe0}
)

// shader 懒编译，首次绘制时才需要
func loadShader() (*ebiten.Shader, error) {
	if gradShader != nil {
		return gradShader, nil
	}
	s, err := ebiten.NewShader([]byte(gradKage))
	if err != nil {
		return nil, err
	}
	gradShader = s
	return s, nil
}

// cellOrigin 返回格子 (row, col) 左上角；row 0 在最下面，顶部留一行给悬停棋子
func cellOrigin(row, col, cell int) (float64, float64) {
	return float64(col * cell), float64((game.Rows - row) * cell)
}

func cellCenter(row, col, cell int) (float32, float32) {
	x, y := cellOrigin(row, col, cell)
	return float32(x + float64(cell)/2), float32(y + float64(cell)/2)
}

// bakeBoard 画出带孔的蓝色底板，再用 shader 做一次乘性渐变
func (gs *GameScreen) bakeBoard() *ebiten.Image {
	if gs.boardBaked != nil {
		return gs.boardBaked
	}
	cell := gs.cellSize
	w, h := game.Columns*cell, game.Rows*cell
	layer := ebiten.NewImage(w, h)
	layer.Fill(boardBlue)
	r := float32(cell) * 0.42
	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Columns; col++ {
			cx := float32(col*cell) + float32(cell)/2
			cy := float32(row*cell) + float32(cell)/2
			vector.DrawFilledCircle(layer, cx, cy, r, holeColor, true)
		}
	}

	shader, err := loadShader()
	if err != nil {
		gs.log.Warn().Err(err).Msg("gradient shader unavailable")
		gs.boardBaked = layer
		return layer
	}
	shaded := ebiten.NewImage(w, h)
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = layer
	op.Uniforms = map[string]any{
		"UBright": float32(1.35),
		"UDark":   float32(0.70),
	}
	shaded.DrawRectShader(w, h, shader, op)
	gs.boardBaked = shaded
	return shaded
}

// Draw 每帧渲染：底板、棋子、悬停、胜利连线、状态栏
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	cell := gs.cellSize
	f := gs.state.Snapshot()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(cell))
	screen.DrawImage(gs.bakeBoard(), op)

	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Columns; col++ {
			if st := f.Board.Get(row, col); st != game.Empty {
				gs.drawDisk(screen, gs.pieceImages[st], row, col)
			}
		}
	}

	if f.LastMove != nil && f.Outcome == nil {
		cx, cy := cellCenter(f.LastMove.Row, f.LastMove.Col, cell)
		vector.DrawFilledCircle(screen, cx, cy, float32(cell)/12, lineColor, true)
	}

	// 悬停：玩家回合在顶部行画一个预览棋子
	if f.Outcome == nil && f.Turn == game.PlayerDisk && gs.hoverCol >= 0 && gs.hoverCol < game.Columns {
		gs.drawDiskAt(screen, gs.pieceImages[game.PlayerDisk], float64(gs.hoverCol*cell), 0, 0.6)
	}

	// —— 思考图标（右上角）——
	if gs.thinking() && gs.aiThinkingImg != nil {
		iw := gs.aiThinkingImg.Bounds().Dx()
		op := &ebiten.DrawImageOptions{}
		margin := 8.0
		op.GeoM.Translate(float64(game.Columns*cell-iw)-margin, margin)
		screen.DrawImage(gs.aiThinkingImg, op)
	}

	if f.Outcome != nil && f.Outcome.HasLine {
		a, b := f.Outcome.Line[0], f.Outcome.Line[game.WinLen-1]
		x0, y0 := cellCenter(a.Row, a.Col, cell)
		x1, y1 := cellCenter(b.Row, b.Col, cell)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(cell)/10, lineColor, true)
	}
	if f.Outcome != nil {
		drawTextCentered(screen, gs.fontFace, f.Outcome.Message, float64(game.Columns*cell)/2, float64(cell)/2, color.White)
	}

	_, h := gs.WindowSize()
	text.Draw(screen, gs.statusText(f, time.Now()), gs.fontFace, 10, h-statusBarH/2+4, color.White)
}

func (gs *GameScreen) drawDisk(dst, img *ebiten.Image, row, col int) {
	x, y := cellOrigin(row, col, gs.cellSize)
	gs.drawDiskAt(dst, img, x, y, 1)
}

// drawDiskAt 把棋子图居中画到以 (x, y) 为左上角的格子里
func (gs *GameScreen) drawDiskAt(dst, img *ebiten.Image, x, y, alpha float64) {
	if img == nil {
		return
	}
	pw, ph := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(x+float64(gs.cellSize-pw)/2, y+float64(gs.cellSize-ph)/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}

func (gs *GameScreen) statusText(f game.Frame, now time.Time) string {
	switch {
	case f.Outcome != nil:
		return f.Outcome.Message + "  (R: new game, Esc: quit)"
	case gs.notice != "" && now.Before(gs.noticeUntil):
		return gs.notice
	case f.Turn == game.AIDisk:
		return fmt.Sprintf("Computer is thinking (depth %d)...", gs.state.Depth())
	default:
		return "Your move: click a column"
	}
}

// 居中绘制文本（用 basicfont）
func drawTextCentered(dst *ebiten.Image, face font.Face, s string, x, y float64, col color.Color) {
	b := text.BoundString(face, s)
	w := float64(b.Dx())
	h := float64(b.Dy())
	text.Draw(dst, s, face, int(x-w/2), int(y+h/2)-2, col)
}
