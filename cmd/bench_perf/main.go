// cmd/bench_perf/main.go
// 引擎自对弈一整局，同时采集 CPU profile：go tool pprof -http=:8080 cpu.prof
package main

import (
	"context"
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"connectfour_go/internal/game"
	"connectfour_go/internal/logger"
)

func main() {
	var (
		depth   = flag.Int("depth", game.DefaultDepth, "搜索深度")
		workers = flag.Int("workers", 1, "根节点并行度，1 为串行")
		profile = flag.String("cpuprofile", "cpu.prof", "CPU profile 输出路径，空字符串表示不采集")
		level   = flag.String("log", "info", "日志级别")
	)
	flag.Parse()

	log, err := logger.New(*level, true, os.Stderr)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	log.Info().Int("depth", *depth).Int("workers", *workers).Msg("starting engine-vs-engine benchmark")
	total, nodes, err := playOut(context.Background(), *depth, *workers, log)
	if err != nil {
		log.Error().Err(err).Msg("benchmark aborted")
		return
	}
	log.Info().Dur("total", total).Int64("nodes", nodes).
		Float64("knps", float64(nodes)/total.Seconds()/1000).
		Str("profile", *profile).
		Msg("full game finished")
}

// playOut 双方都用同一个引擎下完一局；玩家一方通过 SwapSides 搜索
func playOut(ctx context.Context, depth, workers int, log zerolog.Logger) (time.Duration, int64, error) {
	b := game.NewBoard()
	side := game.PlayerDisk
	var nodes int64
	start := time.Now()
	for ply := 1; ; ply++ {
		if game.IsTerminal(b) {
			winner := game.Empty
			if game.HasFourInARow(b, game.PlayerDisk) {
				winner = game.PlayerDisk
			} else if game.HasFourInARow(b, game.AIDisk) {
				winner = game.AIDisk
			}
			log.Info().Stringer("winner", winner).Int("plies", ply-1).Msg("game over\n" + b.String())
			break
		}
		res, stats, err := game.SearchFor(ctx, b, side, depth, workers)
		if err != nil {
			return 0, nodes, err
		}
		if !res.HasColumn {
			return 0, nodes, game.ErrNoLegalMoves
		}
		if _, err := b.Drop(res.Column, side); err != nil {
			return 0, nodes, err
		}
		nodes += stats.Nodes
		log.Info().Int("ply", ply).Stringer("side", side).Int("column", res.Column).
			Int64("value", res.Value).Int64("nodes", stats.Nodes).Dur("elapsed", stats.Elapsed).Msg("move")
		side = game.Opponent(side)
	}
	return time.Since(start), nodes, nil
}
