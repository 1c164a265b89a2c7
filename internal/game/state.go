package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FirstMove 决定谁先手
type FirstMove string

const (
	FirstHuman  FirstMove = "human"
	FirstAI     FirstMove = "ai"
	FirstRandom FirstMove = "random"
)

// GameState 包含了整个对局的状态：棋盘、当前执子方、胜负
type GameState struct {
	ID            string    // 对局 id，写进日志方便对照
	Board         *Board    // 棋盘
	CurrentPlayer CellState // 当前执子方 (PlayerDisk 或 AIDisk)
	GameOver      bool      // 游戏是否结束
	Winner        CellState // 胜者 (Empty 表示平局)
	Moves         []Pos     // 落子记录

	depth   int
	workers int
	first   FirstMove
	rng     *rand.Rand
	baseLog zerolog.Logger
	log     zerolog.Logger
}

type Option func(*GameState)

// WithDepth sets the search depth used for the computer's moves.
func WithDepth(depth int) Option { return func(gs *GameState) { gs.depth = depth } }

func WithWorkers(n int) Option { return func(gs *GameState) { gs.workers = n } }

func WithFirstMove(f FirstMove) Option { return func(gs *GameState) { gs.first = f } }

func WithLogger(l zerolog.Logger) Option { return func(gs *GameState) { gs.baseLog = l } }

func WithRand(r *rand.Rand) Option { return func(gs *GameState) { gs.rng = r } }

// NewGameState 创建一局新游戏，默认深度 5、串行搜索、随机先手
func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		depth:   DefaultDepth,
		workers: 1,
		first:   FirstRandom,
		baseLog: zerolog.Nop(),
	}
	for _, o := range opts {
		o(gs)
	}
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gs.Reset()
	return gs
}

func (gs *GameState) Depth() int   { return gs.depth }
func (gs *GameState) Workers() int { return gs.workers }

// Reset 重置到空棋盘，并重新决定先手
func (gs *GameState) Reset() {
	gs.ID = uuid.NewString()
	gs.Board = NewBoard()
	gs.GameOver = false
	gs.Winner = Empty
	gs.Moves = nil
	gs.log = gs.baseLog.With().Str("component", "game").Str("game_id", gs.ID).Logger()

	switch gs.first {
	case FirstHuman:
		gs.CurrentPlayer = PlayerDisk
	case FirstAI:
		gs.CurrentPlayer = AIDisk
	default:
		if gs.rng.Intn(2) == 0 {
			gs.CurrentPlayer = PlayerDisk
		} else {
			gs.CurrentPlayer = AIDisk
		}
	}
	gs.log.Info().
		Stringer("first", gs.CurrentPlayer).
		Int("depth", gs.depth).
		Int("workers", gs.workers).
		Msg("game started")
}

// PlayHuman applies the human's column. Out-of-range or full columns are
// rejected before the board is touched (see IsInvalidMove).
func (gs *GameState) PlayHuman(col int) error {
	if err := gs.checkTurn(PlayerDisk); err != nil {
		return err
	}
	row, err := gs.Board.Drop(col, PlayerDisk)
	if err != nil {
		gs.log.Debug().Err(err).Int("column", col).Msg("human move rejected")
		return err
	}
	gs.afterMove(Pos{Row: row, Col: col}, PlayerDisk)
	return nil
}

// PlayAI 在当前盘面上以固定深度、完整窗口搜索，然后落子
func (gs *GameState) PlayAI(ctx context.Context) (SearchResult, error) {
	if err := gs.checkTurn(AIDisk); err != nil {
		return SearchResult{}, err
	}
	if gs.Board.Full() {
		return SearchResult{}, ErrNoLegalMoves
	}
	res, stats, err := Search(ctx, gs.Board.Clone(), gs.depth, gs.workers)
	if err != nil {
		return SearchResult{}, errors.Wrap(err, "ai search")
	}
	gs.LogSearch(res, stats)
	if !res.HasColumn {
		return res, errors.Wrapf(ErrNoLegalMoves, "search at depth %d selected no column", gs.depth)
	}
	return res, gs.ApplyAIMove(res.Column)
}

// LogSearch records a finished search; front ends that search in the
// background call it before ApplyAIMove.
func (gs *GameState) LogSearch(res SearchResult, stats SearchStats) {
	gs.log.Info().
		Int("column", res.Column).
		Int64("value", res.Value).
		Int64("nodes", stats.Nodes).
		Dur("elapsed", stats.Elapsed).
		Int("depth", stats.Depth).
		Msg("ai move selected")
}

// ApplyAIMove 把已经算好的列落到真实棋盘上
func (gs *GameState) ApplyAIMove(col int) error {
	if err := gs.checkTurn(AIDisk); err != nil {
		return err
	}
	row, err := gs.Board.Drop(col, AIDisk)
	if err != nil {
		return errors.Wrap(err, "apply ai move")
	}
	gs.afterMove(Pos{Row: row, Col: col}, AIDisk)
	return nil
}

func (gs *GameState) checkTurn(side CellState) error {
	if gs.GameOver {
		return ErrGameOver
	}
	if gs.CurrentPlayer != side {
		return errors.Wrapf(ErrNotYourTurn, "%s to move", gs.CurrentPlayer)
	}
	return nil
}

func (gs *GameState) afterMove(p Pos, disk CellState) {
	gs.Moves = append(gs.Moves, p)
	gs.log.Info().Stringer("side", disk).Int("column", p.Col).Int("row", p.Row).Msg("disk placed")
	gs.log.Debug().Msg("board\n" + gs.Board.String())

	switch {
	case HasFourInARow(gs.Board, disk):
		gs.GameOver = true
		gs.Winner = disk
	case gs.Board.Full():
		gs.GameOver = true
		gs.Winner = Empty
	default:
		gs.CurrentPlayer = Opponent(disk)
		return
	}
	out, _ := gs.Outcome()
	gs.log.Info().Stringer("winner", gs.Winner).Int("moves", len(gs.Moves)).Msg(out.Message)
}

// Outcome is the end-of-game announcement handed to displays.
type Outcome struct {
	Winner  CellState // Empty 表示平局
	Message string
	Line    [WinLen]Pos
	HasLine bool
}

func (gs *GameState) Outcome() (Outcome, bool) {
	if !gs.GameOver {
		return Outcome{}, false
	}
	out := Outcome{Winner: gs.Winner}
	switch gs.Winner {
	case PlayerDisk:
		out.Message = "Player 1 wins!!"
	case AIDisk:
		out.Message = "Player 2 wins!!"
	default:
		out.Message = "Draw!"
	}
	if gs.Winner != Empty {
		out.Line, out.HasLine = WinningLine(gs.Board, gs.Winner)
	}
	return out, true
}

// Frame 是交给显示层的只读快照
type Frame struct {
	Board    Board
	Turn     CellState
	LastMove *Pos
	Outcome  *Outcome
}

func (gs *GameState) Snapshot() Frame {
	f := Frame{Board: *gs.Board, Turn: gs.CurrentPlayer}
	if n := len(gs.Moves); n > 0 {
		last := gs.Moves[n-1]
		f.LastMove = &last
	}
	if out, ok := gs.Outcome(); ok {
		f.Outcome = &out
	}
	return f
}
