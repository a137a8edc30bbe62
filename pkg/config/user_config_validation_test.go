package config

import (
	"testing"
	"time"
)

func TestUserConfigValidate(t *testing.T) {
	scenarios := []struct {
		name     string
		mutate   func(*UserConfig)
		expectOK bool
	}{
		{
			"defaults pass",
			func(config *UserConfig) {},
			true,
		},
		{
			"static min bound",
			func(config *UserConfig) {
				config.Stats.Graphs[0].MinType = "static"
				config.Stats.Graphs[0].Min = 1
			},
			true,
		},
		{
			"unknown title color",
			func(config *UserConfig) { config.Gui.Theme.TitleColor = []string{"sparkly"} },
			false,
		},
		{
			"unknown highlight color",
			func(config *UserConfig) { config.Gui.Theme.HighlightColor = []string{"red", "blinking"} },
			false,
		},
		{
			"unknown graph series",
			func(config *UserConfig) { config.Stats.Graphs[0].Series = "ciphertext" },
			false,
		},
		{
			"unknown graph minType",
			func(config *UserConfig) { config.Stats.Graphs[0].MinType = "dynamic" },
			false,
		},
		{
			"unknown graph color",
			func(config *UserConfig) { config.Stats.Graphs[1].Color = "infrared" },
			false,
		},
		{
			"missing statPath",
			func(config *UserConfig) { config.Stats.Graphs[0].StatPath = "" },
			false,
		},
		{
			"negative graph height",
			func(config *UserConfig) { config.Stats.Graphs[0].Height = -3 },
			false,
		},
		{
			"negative workers",
			func(config *UserConfig) { config.Verify.Workers = -1 },
			false,
		},
		{
			"negative progress interval",
			func(config *UserConfig) { config.Verify.ProgressInterval = -time.Second },
			false,
		},
	}

	for _, scenario := range scenarios {
		config := GetDefaultConfig()
		scenario.mutate(&config)

		err := config.Validate()
		if scenario.expectOK && err != nil {
			t.Errorf("%s: unexpected error: %s", scenario.name, err)
		}
		if !scenario.expectOK && err == nil {
			t.Errorf("%s: expected an error but got none", scenario.name)
		}
	}
}
