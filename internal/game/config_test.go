package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"narrow map", func(c *Config) { c.MapWidth = 8 }},
		{"short map", func(c *Config) { c.MapHeight = 0 }},
		{"no rays", func(c *Config) { c.Rays = 0 }},
		{"no vision", func(c *Config) { c.VisionRange = 0 }},
		{"negative aggro", func(c *Config) { c.AggroRange = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", cfg)
			}
		})
	}

	smallest := DefaultConfig()
	smallest.MapWidth, smallest.MapHeight = 9, 9
	if err := smallest.Validate(); err != nil {
		t.Errorf("9x9 map should be accepted: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycrawl.yaml")
	data := []byte("seed: 1234\nmap_width: 60\nmap_height: 40\naggro_range: 4.5\nlog_file: game.log\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 1234 || cfg.MapWidth != 60 || cfg.MapHeight != 40 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.AggroRange != 4.5 || cfg.LogFile != "game.log" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Rays != DefaultConfig().Rays || cfg.TickRate != DefaultConfig().TickRate {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("seed: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(broken); err == nil {
		t.Error("expected a parse error")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("map_width: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(tiny); err == nil {
		t.Error("expected a validation error")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("RAYCRAWL_SEED", "77")
	t.Setenv("RAYCRAWL_VISION_RANGE", "10.5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 77 || cfg.VisionRange != 10.5 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"RAYCRAWL_MAP_WIDTH":   "50",
		"RAYCRAWL_RAYS":        "360",
		"RAYCRAWL_AGGRO_RANGE": "3",
		"RAYCRAWL_DATA_DIR":    "/tmp/data",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if cfg.MapWidth != 50 || cfg.Rays != 360 || cfg.AggroRange != 3 || cfg.DataDir != "/tmp/data" {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	env["RAYCRAWL_TICK_RATE"] = "fast"
	if err := cfg.applyEnv(lookup); err == nil {
		t.Error("expected an error for a non-numeric tick rate")
	}
}

func TestConfigDerivedSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapWidth, cfg.MapHeight = 70, 50
	cfg.Rays, cfg.VisionRange = 360, 6

	gc := cfg.GeneratorConfig()
	if gc.Width != 70 || gc.Height != 50 {
		t.Errorf("generator size = %dx%d", gc.Width, gc.Height)
	}
	if gc.MinRooms != 15 {
		t.Errorf("generator MinRooms = %d, want the default 15", gc.MinRooms)
	}

	vc := cfg.VisionConfig()
	if vc.Rays != 360 || vc.Range != 6 {
		t.Errorf("vision config = %+v", vc)
	}
}
