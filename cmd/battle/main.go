// cmd/battle/main.go
// 两个搜索深度对打若干局，轮流先手，每一手写一行 CSV 供后续分析
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"connectfour_go/internal/game"
	"connectfour_go/internal/logger"
)

// engine 描述参赛的一方
type engine struct {
	name  string
	depth int
}

type plyRow struct {
	game   int
	ply    int
	mover  string
	column int
	value  int64
	nodes  int64
}

// playOneGame 下一整局。first 执 PlayerDisk 先走，second 执 AIDisk。
// 开局 randomOpen 手随机落子，避免确定性引擎每局都一样。
// 返回胜方（Empty 表示平局）。
func playOneGame(ctx context.Context, g int, first, second engine, randomOpen int, rng *rand.Rand) (game.CellState, []plyRow, error) {
	b := game.NewBoard()
	side := game.PlayerDisk
	rows := make([]plyRow, 0, game.Rows*game.Columns)

	for ply := 1; !game.IsTerminal(b); ply++ {
		eng := first
		if side == game.AIDisk {
			eng = second
		}
		row := plyRow{game: g, ply: ply, mover: eng.name}

		if ply <= randomOpen {
			moves := b.LegalMoves()
			row.column = moves[rng.Intn(len(moves))]
			row.mover = "random"
		} else {
			res, stats, err := game.SearchFor(ctx, b, side, eng.depth, 1)
			if err != nil {
				return game.Empty, rows, err
			}
			if !res.HasColumn {
				return game.Empty, rows, errors.Wrapf(game.ErrNoLegalMoves, "game %d ply %d", g, ply)
			}
			row.column, row.value, row.nodes = res.Column, res.Value, stats.Nodes
		}
		if _, err := b.Drop(row.column, side); err != nil {
			return game.Empty, rows, err
		}
		rows = append(rows, row)
		side = game.Opponent(side)
	}

	switch {
	case game.HasFourInARow(b, game.PlayerDisk):
		return game.PlayerDisk, rows, nil
	case game.HasFourInARow(b, game.AIDisk):
		return game.AIDisk, rows, nil
	}
	return game.Empty, rows, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	return w.WriteAll(rows)
}

func main() {
	var (
		games      = flag.Int("games", 20, "对战总局数")
		depthA     = flag.Int("depth_a", game.DefaultDepth, "A 方搜索深度")
		depthB     = flag.Int("depth_b", 3, "B 方搜索深度")
		randomOpen = flag.Int("random_open", 2, "开局随机手数")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "随机种子")
		outCSV     = flag.String("out", "battle_samples.csv", "采样CSV输出路径")
		level      = flag.String("log", "info", "日志级别")
	)
	flag.Parse()

	log, err := logger.New(*level, true, os.Stderr)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	// Ctrl+C 时停止搜索，已完成的对局照常写盘
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := engine{name: "A", depth: *depthA}
	b := engine{name: "B", depth: *depthB}
	rng := rand.New(rand.NewSource(*seed))

	aWins, bWins, draws := 0, 0, 0
	rows := [][]string{{"game", "ply", "mover", "column", "value", "nodes"}}
	for g := 1; g <= *games; g++ {
		first, second := a, b
		if g%2 == 0 { // 偶数局 B 先
			first, second = b, a
		}
		winner, plies, err := playOneGame(ctx, g, first, second, *randomOpen, rng)
		if err != nil {
			log.Warn().Err(err).Int("game", g).Msg("battle interrupted")
			break
		}
		switch winner {
		case game.PlayerDisk:
			if first == a {
				aWins++
			} else {
				bWins++
			}
		case game.AIDisk:
			if second == a {
				aWins++
			} else {
				bWins++
			}
		default:
			draws++
		}
		for _, p := range plies {
			rows = append(rows, []string{
				strconv.Itoa(p.game),
				strconv.Itoa(p.ply),
				p.mover,
				strconv.Itoa(p.column),
				strconv.FormatInt(p.value, 10),
				strconv.FormatInt(p.nodes, 10),
			})
		}
		logProgress(log, g, *games, aWins, bWins, draws)
	}

	log.Info().Int("depth_a", a.depth).Int("depth_b", b.depth).
		Int("a_wins", aWins).Int("b_wins", bWins).Int("draws", draws).
		Msg("battle finished")

	if err := writeCSV(*outCSV, rows); err != nil {
		log.Fatal().Err(err).Str("path", *outCSV).Msg("写CSV失败")
	}
	log.Info().Str("path", *outCSV).Msg("samples written")
}

func logProgress(log zerolog.Logger, g, total, aWins, bWins, draws int) {
	if g%10 != 0 && g != total {
		return
	}
	log.Info().Int("game", g).Int("total", total).
		Int("a_wins", aWins).Int("b_wins", bWins).Int("draws", draws).
		Msg("progress")
}
