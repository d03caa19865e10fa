package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CALPICK_CONFIG", path)
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CALPICK_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Picker.Range || cfg.Picker.BlockRangeWhenBlockedDateInPeriod || !cfg.Picker.NotifyBlocked {
		t.Fatalf("unexpected picker defaults %+v", cfg.Picker)
	}
	if cfg.Blocked.Refresh != "*/15 * * * *" || cfg.Blocked.HorizonMonths != 24 {
		t.Fatalf("unexpected blocked defaults %+v", cfg.Blocked)
	}
	if filepath.Base(cfg.Database.Path) != "calpick.db" {
		t.Fatalf("database path = %q", cfg.Database.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	writeConfig(t, `
[picker]
range = false
block_range_when_blocked_date_in_period = true

[blocked]
dates = ["2024-03-07", "2024-12-25"]
rules = ["FREQ=WEEKLY;BYDAY=SU"]
ics = ["/tmp/holidays.ics"]
horizon_months = 6

[ui]
timezone = "Australia/Melbourne"
`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Picker.Range || !cfg.Picker.BlockRangeWhenBlockedDateInPeriod {
		t.Fatalf("picker = %+v", cfg.Picker)
	}
	if len(cfg.Blocked.Dates) != 2 || cfg.Blocked.Dates[1] != "2024-12-25" {
		t.Fatalf("dates = %v", cfg.Blocked.Dates)
	}
	if len(cfg.Blocked.Rules) != 1 || len(cfg.Blocked.ICS) != 1 || cfg.Blocked.HorizonMonths != 6 {
		t.Fatalf("blocked = %+v", cfg.Blocked)
	}
	if cfg.UI.Timezone != "Australia/Melbourne" {
		t.Fatalf("timezone = %q", cfg.UI.Timezone)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	writeConfig(t, "[picker]\nrange = true\n")
	t.Setenv("CALPICK_PICKER_RANGE", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Picker.Range {
		t.Fatalf("env override ignored")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CALPICK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestSaveWritesPickerFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("CALPICK_CONFIG", path)
	cfg := Config{Picker: PickerConfig{Range: false, BlockRangeWhenBlockedDateInPeriod: true}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Picker.Range || !got.Picker.BlockRangeWhenBlockedDateInPeriod || got.Picker.NotifyBlocked {
		t.Fatalf("picker = %+v", got.Picker)
	}
}

func TestSaveKeepsFileAndSkipsEnvOverrides(t *testing.T) {
	writeConfig(t, "[database]\npath = \"/data/calpick.db\"\n\n[blocked]\ndates = [\"2024-03-07\"]\n")
	t.Setenv("CALPICK_DATABASE_PATH", "/tmp/override.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Fatalf("env override ignored: %q", cfg.Database.Path)
	}

	cfg.Picker.Range = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("CALPICK_DATABASE_PATH", "")
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Database.Path != "/data/calpick.db" {
		t.Fatalf("env override was persisted: %q", got.Database.Path)
	}
	if got.Picker.Range {
		t.Fatalf("picker flag not saved")
	}
	if len(got.Blocked.Dates) != 1 || got.Blocked.Dates[0] != "2024-03-07" {
		t.Fatalf("dates = %v", got.Blocked.Dates)
	}
	if got.Blocked.Refresh != "*/15 * * * *" {
		t.Fatalf("default refresh = %q", got.Blocked.Refresh)
	}
}
