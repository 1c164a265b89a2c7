package config

import (
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"connectfour_go/internal/game"
)

const (
	ModeGUI  = "gui"
	ModeTUI  = "tui"
	ModeText = "text"
)

type Config struct {
	Mode      string // gui(窗口) | tui(终端) | text(纯文本)
	Depth     int    // AI 搜索深度
	First     string // human | ai | random
	Workers   int    // 根节点并行度，1 = 串行
	LogLevel  string
	LogPretty bool
	CellSize  int // 窗口模式下每格像素
}

// Load resolves the configuration: built-in defaults, then an optional .env
// file (C4_ENV_FILE, default ".env"), then the process environment, then flags.
// godotenv never overrides variables that are already set.
func Load(args []string) (*Config, error) {
	envFile := getEnv("C4_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "load %s", envFile)
	}

	cfg := &Config{
		Mode:      getEnv("C4_MODE", ModeGUI),
		Depth:     getEnvInt("C4_DEPTH", game.DefaultDepth),
		First:     getEnv("C4_FIRST", string(game.FirstRandom)),
		Workers:   getEnvInt("C4_WORKERS", game.DefaultWorkers()),
		LogLevel:  getEnv("C4_LOG_LEVEL", "info"),
		LogPretty: getEnvBool("C4_LOG_PRETTY", true),
		CellSize:  getEnvInt("C4_CELL_SIZE", 80),
	}

	set := flag.NewFlagSet("connectfour", flag.ContinueOnError)
	set.StringVar(&cfg.Mode, "mode", cfg.Mode, "界面: gui(窗口) | tui(终端) | text(纯文本)")
	set.IntVar(&cfg.Depth, "depth", cfg.Depth, "AI 搜索深度 (默认 5)")
	set.StringVar(&cfg.First, "first", cfg.First, "先手: human | ai | random")
	set.IntVar(&cfg.Workers, "workers", cfg.Workers, "根节点并行搜索线程数，1 为串行")
	set.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "日志级别: debug | info | warn | error")
	set.BoolVar(&cfg.LogPretty, "pretty", cfg.LogPretty, "人类可读的日志格式")
	set.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "窗口模式下每格像素")
	if err := set.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeGUI, ModeTUI, ModeText:
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	switch game.FirstMove(c.First) {
	case game.FirstHuman, game.FirstAI, game.FirstRandom:
	default:
		return errors.Errorf("unknown first mover %q", c.First)
	}
	// 深度 0 时根节点直接截断，AI 选不出列
	if c.Depth < 1 {
		return errors.Errorf("depth must be >= 1, got %d", c.Depth)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.CellSize < 20 {
		return errors.Errorf("cell size must be >= 20, got %d", c.CellSize)
	}
	return nil
}

func (c *Config) FirstMove() game.FirstMove { return game.FirstMove(c.First) }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
