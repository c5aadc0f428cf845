package beach

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"cols":        "120",
		"rows":        "80",
		"cell":        "10",
		"seed":        "77",
		"fast_amp":    "55",
		"slow_period": "30",
		"scan_radius": "3",
	})
	if cfg.Cols != 120 || cfg.Rows != 80 {
		t.Fatalf("expected 120x80, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.CellSize != 10 {
		t.Fatalf("expected cell size 10, got %v", cfg.CellSize)
	}
	if cfg.Seed != 77 {
		t.Fatalf("expected seed 77, got %d", cfg.Seed)
	}
	if cfg.Params.WaveFastAmp != 55 {
		t.Fatalf("expected fast amplitude 55, got %v", cfg.Params.WaveFastAmp)
	}
	if cfg.Params.WaveSlowPeriod != 30 {
		t.Fatalf("expected slow period 30, got %v", cfg.Params.WaveSlowPeriod)
	}
	if cfg.Params.ScanRadius != 3 {
		t.Fatalf("expected scan radius 3, got %d", cfg.Params.ScanRadius)
	}
	// Untouched fields keep their defaults.
	if cfg.Params.PickupProbMax != DefaultConfig().Params.PickupProbMax {
		t.Fatal("unrelated params must keep defaults")
	}
}

func TestFromMapRejectsBadValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"cols":     "-3",
		"cell":     "zero",
		"fill_top": "1.5",
	})
	if cfg.Cols != def.Cols || cfg.CellSize != def.CellSize || cfg.Params.FillTopFrac != def.Params.FillTopFrac {
		t.Fatal("invalid values must be ignored in favor of defaults")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beach.yaml")
	doc := []byte("cols: 100\nrows: 50\nparams:\n  wave_fast_amp: 25\n  scan_radius: 4\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cols != 100 || cfg.Rows != 50 {
		t.Fatalf("expected 100x50, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.Params.WaveFastAmp != 25 {
		t.Fatalf("expected fast amplitude 25, got %v", cfg.Params.WaveFastAmp)
	}
	if cfg.Params.ScanRadius != 4 {
		t.Fatalf("expected scan radius 4, got %d", cfg.Params.ScanRadius)
	}
	if cfg.Params.WaveSlowAmp != DefaultConfig().Params.WaveSlowAmp {
		t.Fatal("fields absent from the file must keep defaults")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must report an error")
	}
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("cols: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("malformed yaml must report an error")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	if !w.SetFloatParameter("fast_freq", 5) {
		t.Fatal("known key must be accepted")
	}
	if w.cfg.Params.WaveFastFreq != 1 {
		t.Fatalf("fast frequency must clamp to 1, got %v", w.cfg.Params.WaveFastFreq)
	}
	if w.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key must be rejected")
	}
	if !w.SetIntParameter("scan_radius", 9) {
		t.Fatal("known int key must be accepted")
	}
	if w.cfg.Params.ScanRadius != 4 {
		t.Fatalf("scan radius must clamp to 4, got %d", w.cfg.Params.ScanRadius)
	}
}
