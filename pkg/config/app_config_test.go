package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jesseduffield/yaml"
)

func TestNewAppConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("lazysdes", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if conf.Name != "lazysdes" {
		t.Fatalf("Expected name lazysdes but got %s", conf.Name)
	}

	if conf.UserConfig.Gui.Language != "auto" {
		t.Fatalf("Expected language auto but got %s", conf.UserConfig.Gui.Language)
	}

	graphs := conf.UserConfig.Stats.Graphs
	if len(graphs) != 2 {
		t.Fatalf("Expected 2 default graphs but got %d", len(graphs))
	}
	if graphs[0].Series != SeriesPlaintext || graphs[1].Series != SeriesKey {
		t.Fatalf("Expected a plaintext and a key graph but got %s and %s", graphs[0].Series, graphs[1].Series)
	}
	if graphs[0].StatPath != "Distance" {
		t.Fatalf("Expected default statPath Distance but got %s", graphs[0].StatPath)
	}

	if conf.UserConfig.Verify.ProgressInterval != time.Millisecond*200 {
		t.Fatalf("Expected default progress interval of 200ms but got %s", conf.UserConfig.Verify.ProgressInterval)
	}

	if conf.UserConfig.OS.OpenCommand == "" {
		t.Fatal("Expected a platform default open command but got none")
	}

	if _, err := os.Stat(conf.ConfigFilename()); err != nil {
		t.Fatalf("Expected a config file to be created: %s", err)
	}
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	content := "gui:\n  language: 'nl'\nverify:\n  workers: 4\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	conf, err := NewAppConfig("lazysdes", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if conf.UserConfig.Gui.Language != "nl" {
		t.Fatalf("Expected language nl but got %s", conf.UserConfig.Gui.Language)
	}

	if conf.UserConfig.Verify.Workers != 4 {
		t.Fatalf("Expected 4 workers but got %d", conf.UserConfig.Verify.Workers)
	}

	// sections the user did not mention keep their defaults
	if len(conf.UserConfig.Stats.Graphs) != 2 {
		t.Fatalf("Expected the default graphs to survive but got %d graphs", len(conf.UserConfig.Stats.Graphs))
	}
}

func TestInvalidUserConfigIsRejected(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("CONFIG_DIR", configDir)

	content := "gui:\n  theme:\n    titleColor:\n      - 'sparkly'\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	_, err := NewAppConfig("lazysdes", "version", "commit", "date", "buildSource", false)
	if err == nil {
		t.Fatal("Expected an error for an unknown color attribute but got none")
	}
	if !strings.Contains(err.Error(), "Unrecognized color attribute 'sparkly'") {
		t.Fatalf("Unexpected error: %s", err)
	}
}

func TestWritingToConfigFile(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("lazysdes", "version", "commit", "date", "buildSource", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	testFn := func(t *testing.T, ac *AppConfig, newValue bool) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Gui.ShowIndexes = newValue
			return nil
		}

		err = ac.WriteToUserConfig(updateFn)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		sampleUC := UserConfig{}
		err = yaml.NewDecoder(file).Decode(&sampleUC)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		err = file.Close()
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		if sampleUC.Gui.ShowIndexes != newValue {
			t.Fatalf("Got %v, Expected %v\n", sampleUC.Gui.ShowIndexes, newValue)
		}
	}

	// insert value into an empty file
	testFn(t, conf, true)

	// modifying an existing file that already has 'ShowIndexes'
	testFn(t, conf, false)
}
