// File /ui/screen.go
package ui

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"connectfour_go/internal/assets"
	"connectfour_go/internal/game"
)

const (
	statusBarH   = 28                     // 底部状态栏高度
	minThinkTime = 400 * time.Millisecond // 思考图标至少显示这么久，避免 AI 秒下看不清
	noticeTime   = 1500 * time.Millisecond
)

type aiResult struct {
	gameID string
	res    game.SearchResult
	stats  game.SearchStats
	err    error
}

// GameScreen 实现 ebiten.Game 接口，管理游戏主循环和渲染
type GameScreen struct {
	state    *game.GameState // 游戏状态
	cellSize int
	log      zerolog.Logger
	fontFace font.Face

	pieceImages   map[game.CellState]*ebiten.Image // 棋子贴图映射
	aiThinkingImg *ebiten.Image                    // 思考中图标
	boardBaked    *ebiten.Image                    // 预渲染好的整盘底图(含渐变)

	hoverCol    int // 鼠标所在列，-1 表示不在棋盘上
	notice      string
	noticeUntil time.Time

	// 思考图标与AI缓存
	ctx             context.Context
	aiResultCh      chan aiResult      // 后台AI结果传回（容量1）
	aiCancel        context.CancelFunc // 取消当前搜索
	aiRunning       bool               // 是否有AI在后台跑
	aiThinkingUntil time.Time
	aiQueued        *aiResult // 已算出但尚未应用
}

// NewGameScreen 构造并初始化游戏界面。ctx 取消时后台搜索一并停止。
func NewGameScreen(ctx context.Context, st *game.GameState, cellSize int, log zerolog.Logger) (*GameScreen, error) {
	gs := &GameScreen{
		state:       st,
		cellSize:    cellSize,
		log:         log.With().Str("component", "ui").Logger(),
		fontFace:    basicfont.Face7x13,
		pieceImages: make(map[game.CellState]*ebiten.Image),
		hoverCol:    -1,
		ctx:         ctx,
		aiResultCh:  make(chan aiResult, 1),
	}
	diskPx := cellSize * 4 / 5
	var err error
	if gs.pieceImages[game.PlayerDisk], err = assets.LoadImage(assets.PlayerDisk, diskPx, diskPx); err != nil {
		return nil, err
	}
	if gs.pieceImages[game.AIDisk], err = assets.LoadImage(assets.AIDisk, diskPx, diskPx); err != nil {
		return nil, err
	}
	if gs.aiThinkingImg, err = assets.LoadImage(assets.Thinking, 0, cellSize/3); err != nil {
		return nil, errors.Wrap(err, "加载思考图标失败")
	}
	return gs, nil
}

// WindowSize 是窗口的逻辑尺寸：顶部一行悬停区 + 6 行棋盘 + 状态栏
func (gs *GameScreen) WindowSize() (int, int) {
	return game.Columns * gs.cellSize, (game.Rows+1)*gs.cellSize + statusBarH
}

// Close 停掉后台搜索
func (gs *GameScreen) Close() {
	gs.stopAI()
}

// Update 更新游戏状态
func (gs *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gs.ctx.Err() != nil {
		gs.stopAI()
		return ebiten.Termination
	}

	if err := gs.collectAI(time.Now()); err != nil {
		return err
	}

	if gs.state.GameOver {
		ensurePerf(false)
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			gs.state.Reset()
			gs.notice = ""
		}
		return nil
	}

	// AI回合：后台搜索，结果回来后再落子
	if gs.state.CurrentPlayer == game.AIDisk {
		ensurePerf(true)
		gs.startAI(time.Now())
		return nil
	}

	// 人类输入处理
	ensurePerf(ebiten.IsFocused())
	gs.handleInput()
	return nil
}

func (gs *GameScreen) startAI(now time.Time) {
	if gs.aiRunning || gs.aiQueued != nil {
		return
	}
	ctx, cancel := context.WithCancel(gs.ctx)
	gs.aiCancel = cancel
	gs.aiRunning = true
	gs.aiThinkingUntil = now.Add(minThinkTime)

	boardCopy := gs.state.Board.Clone()
	depth, workers, id := gs.state.Depth(), gs.state.Workers(), gs.state.ID
	go func(out chan<- aiResult) {
		res, stats, err := game.Search(ctx, boardCopy, depth, workers)
		select {
		case out <- aiResult{gameID: id, res: res, stats: stats, err: err}:
		case <-ctx.Done():
		}
	}(gs.aiResultCh)
}

// collectAI 取回后台结果；思考图标显示够时间后才真正落子
func (gs *GameScreen) collectAI(now time.Time) error {
	select {
	case r := <-gs.aiResultCh:
		gs.aiRunning = false
		gs.aiCancel()
		if r.gameID != gs.state.ID {
			return nil
		}
		if r.err != nil {
			if errors.Is(r.err, context.Canceled) {
				return nil
			}
			return errors.Wrap(r.err, "ai search")
		}
		gs.aiQueued = &r
	default:
	}

	if gs.aiQueued == nil || now.Before(gs.aiThinkingUntil) {
		return nil
	}
	r := gs.aiQueued
	gs.aiQueued = nil
	gs.state.LogSearch(r.res, r.stats)
	if !r.res.HasColumn {
		return errors.Wrapf(game.ErrNoLegalMoves, "search at depth %d selected no column", r.stats.Depth)
	}
	return gs.state.ApplyAIMove(r.res.Column)
}

func (gs *GameScreen) stopAI() {
	if gs.aiRunning {
		gs.aiCancel()
		gs.aiRunning = false
	}
	gs.aiQueued = nil
}

func (gs *GameScreen) thinking() bool {
	return gs.aiRunning || gs.aiQueued != nil
}

func (gs *GameScreen) showNotice(msg string) {
	gs.notice = msg
	gs.noticeUntil = time.Now().Add(noticeTime)
}

// Layout 定义窗口尺寸
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gs.WindowSize()
}
