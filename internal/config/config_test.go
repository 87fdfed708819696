package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Setup("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 3 || cfg.CacheMinDepth != 4 || cfg.PlayerColor != "black" ||
		cfg.Alpha != 0.5 || cfg.Gamma != 0.9 || cfg.Epsilon != 0.1 {
		t.Errorf("defaults %+v", cfg)
	}
}

func TestFileAndEnv(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "othello.yaml")
	var content = "DEPTH: 5\nOPPONENT_STRATEGY: random\nROUNDS: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OTHELLO_ROUNDS", "20")

	cfg, err := Setup(path)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"file", cfg.Depth, 5},
		{"file string", cfg.OpponentStrategy, "random"},
		{"env over file", cfg.Rounds, 20},
		{"default", cfg.Concurrency, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}
