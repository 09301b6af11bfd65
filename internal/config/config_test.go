package config

import (
	"os"
	"testing"
)

func TestLoadConfigWithMissingFile(t *testing.T) {
	configPath, err := getConfigFilePath()
	if err != nil {
		t.Fatalf("getConfigFilePath failed: %v", err)
	}

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		if err := os.Rename(configPath, backupPath); err != nil {
			t.Fatalf("failed to back up config file: %v", err)
		}
		defer os.Rename(backupPath, configPath)
	}

	cfg := LoadConfig()
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want default %+v", cfg, want)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	custom := Config{
		UseUnicode: true,
		ShowCoords: false,
		UseColors:  false,
		Theme:      "modern",
		MaxDepth:   12,
		MaxTimeMS:  2500,
		PostMode:   "xboard",
	}

	if err := SaveConfig(custom); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded := LoadConfig()
	if loaded != custom {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, custom)
	}
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}

	if err := SaveConfig(DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("SaveConfig did not create config directory")
	}
}

func TestFromConfigFileDefaultsEmptyFields(t *testing.T) {
	cf := configFile{
		Display: displaySection{UseUnicode: true, ShowCoords: false, UseColors: false, Theme: ""},
		Engine:  engineSection{MaxDepth: 0, MaxTimeMS: 0, PostMode: ""},
	}

	cfg := fromConfigFile(cf)

	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want default %q", cfg.Theme, DefaultTheme)
	}
	if cfg.PostMode != DefaultPostMode {
		t.Errorf("PostMode = %q, want default %q", cfg.PostMode, DefaultPostMode)
	}
	if cfg.MaxDepth != DefaultConfig().MaxDepth {
		t.Errorf("MaxDepth = %d, want default %d", cfg.MaxDepth, DefaultConfig().MaxDepth)
	}
	if cfg.MaxTimeMS != DefaultConfig().MaxTimeMS {
		t.Errorf("MaxTimeMS = %d, want default %d", cfg.MaxTimeMS, DefaultConfig().MaxTimeMS)
	}
}

func TestToConfigFileRoundTrip(t *testing.T) {
	cfg := Config{
		UseUnicode: true,
		ShowCoords: true,
		UseColors:  false,
		Theme:      "classic",
		MaxDepth:   8,
		MaxTimeMS:  1000,
		PostMode:   "none",
	}

	cf := toConfigFile(cfg)
	back := fromConfigFile(cf)
	if back != cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, cfg)
	}
}
