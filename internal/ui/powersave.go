package ui

import "github.com/hajimehoshi/ebiten/v2"

// 对局结束或窗口失焦时降低刷新率；AI 思考或等待点击时恢复
var perfOn = true // 默认以高刷新启动，保证首帧流程正常

func enterPerf() {
	if perfOn {
		return
	}
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)
	perfOn = true
}

func leavePerf() {
	if !perfOn {
		return
	}
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(10)
	perfOn = false
}

func ensurePerf(active bool) {
	if active {
		enterPerf()
	} else {
		leavePerf()
	}
}
