package config

import (
	"os"
	"path/filepath"
	"testing"

	"connectfour_go/internal/game"
)

// noEnvFile 指向一个不存在的 .env，避免读到仓库里的文件
func noEnvFile(t *testing.T) {
	t.Setenv("C4_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestDefaults(t *testing.T) {
	noEnvFile(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeGUI || cfg.Depth != game.DefaultDepth || cfg.FirstMove() != game.FirstRandom {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.Workers != game.DefaultWorkers() || cfg.CellSize != 80 {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestEnvThenFlags(t *testing.T) {
	noEnvFile(t)
	t.Setenv("C4_DEPTH", "7")
	t.Setenv("C4_MODE", "text")
	t.Setenv("C4_WORKERS", "not-a-number")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 7 || cfg.Mode != ModeText || cfg.Workers != game.DefaultWorkers() {
		t.Fatalf("env: %+v", cfg)
	}

	cfg, err = Load([]string{"-depth", "3", "-first", "ai", "-workers", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 3 || cfg.FirstMove() != game.FirstAI || cfg.Workers != 1 || cfg.Mode != ModeText {
		t.Fatalf("flags: %+v", cfg)
	}
}

func TestDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c4.env")
	if err := os.WriteFile(path, []byte("C4_TEST_DOTENV_DEPTH=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("C4_ENV_FILE", path)
	t.Cleanup(func() { os.Unsetenv("C4_TEST_DOTENV_DEPTH") })

	if _, err := Load(nil); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("C4_TEST_DOTENV_DEPTH"); got != "2" {
		t.Fatalf(".env not loaded: %q", got)
	}
}

func TestValidate(t *testing.T) {
	noEnvFile(t)
	bad := [][]string{
		{"-mode", "web"},
		{"-first", "nobody"},
		{"-depth", "0"},
		{"-workers", "0"},
		{"-cell", "5"},
		{"-unknown"},
	}
	for _, args := range bad {
		if _, err := Load(args); err == nil {
			t.Errorf("Load(%v) accepted", args)
		}
	}
}
