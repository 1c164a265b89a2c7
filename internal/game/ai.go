// game/ai.go
package game

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// WinScore 远大于任何启发式分数，保证搜索总是优先选择直接获胜
	WinScore  int64 = 100000000000000
	LossScore int64 = -10000000000000
	DrawScore int64 = 0

	DefaultDepth = 5
)

// SearchResult is the column chosen at a node and the node's minimax value.
// HasColumn is false for terminal and depth-cutoff nodes.
type SearchResult struct {
	Column    int
	HasColumn bool
	Value     int64
}

type SearchStats struct {
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

// Minimax runs depth-limited minimax with alpha-beta pruning. The maximizing
// side is the computer (AIDisk), the minimizing side the human (PlayerDisk).
func Minimax(b *Board, depth int, alpha, beta int64, maximizing bool) SearchResult {
	return minimax(b, depth, alpha, beta, maximizing, nil)
}

func minimax(b *Board, depth int, alpha, beta int64, maximizing bool, nodes *int64) SearchResult {
	if nodes != nil {
		*nodes++
	}

	// 终局/截断判定，顺序固定：AI 胜 > 玩家胜 > 平局 > 深度耗尽
	if HasFourInARow(b, AIDisk) {
		return SearchResult{Value: WinScore}
	}
	if HasFourInARow(b, PlayerDisk) {
		return SearchResult{Value: LossScore}
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return SearchResult{Value: DrawScore}
	}
	if depth <= 0 {
		return SearchResult{Value: int64(Evaluate(b, AIDisk))}
	}

	// 默认列取第一个合法列；第一个子节点的值必然严格优于 ±∞，会立即覆盖它
	best := SearchResult{Column: moves[0], HasColumn: true}

	if maximizing {
		// === MAX 节点 ===
		best.Value = math.MinInt64
		for _, col := range moves {
			child := *b // 每个分支独立副本
			child.Place(child.AvailableRow(col), col, AIDisk)
			v := minimax(&child, depth-1, alpha, beta, false, nodes).Value
			if v > best.Value {
				best.Value = v
				best.Column = col
			}
			alpha = max(alpha, best.Value)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	// === MIN 节点 ===
	best.Value = math.MaxInt64
	for _, col := range moves {
		child := *b
		child.Place(child.AvailableRow(col), col, PlayerDisk)
		v := minimax(&child, depth-1, alpha, beta, true, nodes).Value
		if v < best.Value {
			best.Value = v
			best.Column = col
		}
		beta = min(beta, best.Value)
		if alpha >= beta {
			break
		}
	}
	return best
}

// FindBestMove searches from the computer's point of view with a full window.
func FindBestMove(b *Board, depth int) (SearchResult, SearchStats) {
	start := time.Now()
	var nodes int64
	res := minimax(b, depth, math.MinInt64, math.MaxInt64, true, &nodes)
	return res, SearchStats{Depth: depth, Nodes: nodes, Elapsed: time.Since(start)}
}

// DefaultWorkers 计算并行度：核心数/2，范围 [2, 8]
func DefaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 2 {
		n = 2
	}
	if n > 8 {
		n = 8
	}
	return n
}

// FindBestMoveParallel splits the root across workers. Every root branch gets
// its own board copy and a full alpha-beta window, so the branches share no
// bounds. The column is picked with the same strict-improvement rule in
// ascending column order, which yields the same column and value as
// FindBestMove (only the node count differs).
func FindBestMoveParallel(ctx context.Context, b *Board, depth, workers int) (SearchResult, SearchStats, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, SearchStats{Depth: depth}, err
	}
	// 根节点本身就是终局或截断：没有可并行的分支
	if depth <= 0 || IsTerminal(b) {
		res, st := FindBestMove(b, depth)
		return res, st, nil
	}
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	moves := b.LegalMoves()
	values := make([]int64, len(moves))
	var nodes atomic.Int64
	nodes.Add(1) // root

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, col := range moves {
		i, col := i, col // per-iteration copies (pre-Go 1.22 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child := b.Clone()
			child.Place(child.AvailableRow(col), col, AIDisk)
			var local int64
			values[i] = minimax(child, depth-1, math.MinInt64, math.MaxInt64, false, &local).Value
			nodes.Add(local)
			return nil
		})
	}
	err := g.Wait()
	stats := SearchStats{Depth: depth, Nodes: nodes.Load(), Elapsed: time.Since(start)}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return SearchResult{}, stats, err
	}

	best := SearchResult{Column: moves[0], HasColumn: true, Value: math.MinInt64}
	for i, v := range values {
		if v > best.Value {
			best.Value = v
			best.Column = moves[i]
		}
	}
	return best, stats, nil
}

// Search picks the sequential engine for workers <= 1, the root-parallel one otherwise.
func Search(ctx context.Context, b *Board, depth, workers int) (SearchResult, SearchStats, error) {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return SearchResult{}, SearchStats{Depth: depth}, err
		}
		res, st := FindBestMove(b, depth)
		return res, st, nil
	}
	return FindBestMoveParallel(ctx, b, depth, workers)
}

// SearchFor runs Search for either side. The engine always maximises for
// AIDisk, so a search for PlayerDisk runs on the colour-swapped board.
func SearchFor(ctx context.Context, b *Board, side CellState, depth, workers int) (SearchResult, SearchStats, error) {
	if side == PlayerDisk {
		b = b.SwapSides()
	}
	return Search(ctx, b, depth, workers)
}
