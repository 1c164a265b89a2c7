package assets

import (
	"bytes"
	"embed"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed images/*.svg
var imageFS embed.FS

// 棋子贴图名
const (
	PlayerDisk = "player"
	AIDisk     = "ai"
	Thinking   = "thinking"
)

type cacheKey struct {
	name string
	w, h int
}

// —— 简单缓存，避免重复渲染 SVG —— //
var imgCache = map[cacheKey]*ebiten.Image{}

// LoadImage 按名称（不含扩展名）加载嵌入的 SVG，并按 w×h 栅格化成 ebiten 图片。
// w 或 h 传 0 时按 viewBox 比例推算。
func LoadImage(name string, w, h int) (*ebiten.Image, error) {
	key := cacheKey{name, w, h}
	if img := imgCache[key]; img != nil {
		return img, nil
	}
	rgba, err := Rasterize(name, w, h)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(rgba)
	imgCache[key] = img
	return img, nil
}

// Rasterize renders an embedded SVG without touching the GPU.
func Rasterize(name string, w, h int) (*image.RGBA, error) {
	data, err := imageFS.ReadFile("images/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "读取嵌入图片 %s 失败", name)
	}
	rgba, err := rasterizeSVG(data, w, h)
	if err != nil {
		return nil, errors.Wrapf(err, "解析 SVG %s 失败", name)
	}
	return rgba, nil
}

// —— 把 SVG 字节渲染为 RGBA —— //
func rasterizeSVG(svgData []byte, targetW, targetH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox

	// 决定像素尺寸（保持比例）
	w := float64(targetW)
	h := float64(targetH)
	switch {
	case w <= 0 && h <= 0:
		w, h = vb.W, vb.H
	case w <= 0:
		w = h * vb.W / vb.H
	case h <= 0:
		h = w * vb.H / vb.W
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	icon.SetTarget(0, 0, w, h)

	dstW, dstH := int(w+0.5), int(h+0.5)
	rgba := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	// 透明底
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(dstW, dstH, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(dstW, dstH, scanner)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}
