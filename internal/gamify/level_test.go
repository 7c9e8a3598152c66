package gamify

import (
	"errors"
	"testing"
)

func TestLevelCost(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 150},
		{3, 200},
		{10, 550},
	}
	for _, tt := range tests {
		if got := LevelCost(cfg, tt.level); got != tt.want {
			t.Errorf("LevelCost(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestTotalXPForLevel(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 100},
		{3, 250},
		{4, 450},
	}
	for _, tt := range tests {
		if got := TotalXPForLevel(cfg, tt.level); got != tt.want {
			t.Errorf("TotalXPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		xp        int
		wantLevel int
		wantInto  int
	}{
		{0, 1, 0},
		{99, 1, 99},
		{100, 2, 0},
		{249, 2, 149},
		{250, 3, 0},
		{449, 3, 199},
		{450, 4, 0},
	}
	for _, tt := range tests {
		info, err := LevelForXP(cfg, tt.xp)
		if err != nil {
			t.Fatalf("LevelForXP(%d): unexpected error: %v", tt.xp, err)
		}
		if info.Level != tt.wantLevel {
			t.Errorf("LevelForXP(%d).Level = %d, want %d", tt.xp, info.Level, tt.wantLevel)
		}
		if info.XPIntoLevel != tt.wantInto {
			t.Errorf("LevelForXP(%d).XPIntoLevel = %d, want %d", tt.xp, info.XPIntoLevel, tt.wantInto)
		}
	}
}

func TestLevelForXP_ProgressFraction(t *testing.T) {
	cfg := DefaultConfig()
	info, err := LevelForXP(cfg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if info.Progress != 0.5 {
		t.Errorf("progress = %f, want 0.5", info.Progress)
	}
	if info.XPForNextLevel != 100 {
		t.Errorf("XPForNextLevel = %d, want 100", info.XPForNextLevel)
	}
}

func TestLevelForXP_NegativeXP(t *testing.T) {
	_, err := LevelForXP(DefaultConfig(), -1)
	if !errors.Is(err, ErrNegativeXP) {
		t.Errorf("got %v, want ErrNegativeXP", err)
	}
}
