package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"connectfour_go/internal/config"
	"connectfour_go/internal/console"
	"connectfour_go/internal/game"
	"connectfour_go/internal/logger"
	"connectfour_go/internal/tui"
	"connectfour_go/internal/ui"
)

// tui 模式下终端被占用，日志写到这个文件
const tuiLogFile = "connectfour.log"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logOut io.Writer = os.Stderr
	if cfg.Mode == config.ModeTUI {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogPretty, logOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := game.NewGameState(
		game.WithDepth(cfg.Depth),
		game.WithWorkers(cfg.Workers),
		game.WithFirstMove(cfg.FirstMove()),
		game.WithLogger(log),
	)

	if err := run(ctx, cfg, st, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("mode", cfg.Mode).Msg("connect four exited")
	}
}

func run(ctx context.Context, cfg *config.Config, st *game.GameState, log zerolog.Logger) error {
	switch cfg.Mode {
	case config.ModeTUI:
		s, err := tui.New()
		if err != nil {
			return err
		}
		defer s.Close()
		if err := game.RunMatch(ctx, st, s); err != nil {
			return err
		}
		if st.GameOver {
			s.WaitKey(ctx)
		}
		return nil

	case config.ModeText:
		return game.RunMatch(ctx, st, console.New(os.Stdin, os.Stdout))

	default:
		screen, err := ui.NewGameScreen(ctx, st, cfg.CellSize, log)
		if err != nil {
			return err
		}
		defer screen.Close()
		w, h := screen.WindowSize()
		ebiten.SetVsyncEnabled(true)
		ebiten.SetTPS(60)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Connect Four")
		if err := ebiten.RunGame(screen); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	}
}
