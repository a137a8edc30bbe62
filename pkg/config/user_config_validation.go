package config

import (
	"fmt"
)

// validColorAttributes holds the color words the renderers understand. It
// matches what utils.GetColorAttribute can turn into an ANSI attribute.
var validColorAttributes = map[string]bool{
	"default":   true,
	"black":     true,
	"red":       true,
	"green":     true,
	"yellow":    true,
	"blue":      true,
	"magenta":   true,
	"cyan":      true,
	"white":     true,
	"bold":      true,
	"underline": true,
}

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if err := validateTheme(config.Gui.Theme); err != nil {
		return err
	}

	if err := validateGraphs(config.Stats.Graphs); err != nil {
		return err
	}

	return validateVerify(config.Verify)
}

func validateColors(path string, colors []string) error {
	for _, color := range colors {
		if !validColorAttributes[color] {
			return fmt.Errorf("Unrecognized color attribute '%s' for '%s'. For permitted values see https://github.com/jesseduffield/lazysdes/blob/master/docs/Config.md", color, path)
		}
	}

	return nil
}

func validateTheme(theme ThemeConfig) error {
	if err := validateColors("gui.theme.titleColor", theme.TitleColor); err != nil {
		return err
	}

	if err := validateColors("gui.theme.highlightColor", theme.HighlightColor); err != nil {
		return err
	}

	return validateColors("gui.theme.infoTextColor", theme.InfoTextColor)
}

func validateGraphs(graphs []GraphConfig) error {
	for i, graph := range graphs {
		if graph.StatPath == "" {
			return fmt.Errorf("Graph %d is missing a statPath", i)
		}

		switch graph.Series {
		case "", SeriesPlaintext, SeriesKey:
		default:
			return fmt.Errorf("Unrecognized series '%s' for graph '%s': expected '%s' or '%s'", graph.Series, graph.Caption, SeriesPlaintext, SeriesKey)
		}

		if graph.MinType != "" && graph.MinType != "static" {
			return fmt.Errorf("Unrecognized minType '%s' for graph '%s': expected '' or 'static'", graph.MinType, graph.Caption)
		}

		if graph.MaxType != "" && graph.MaxType != "static" {
			return fmt.Errorf("Unrecognized maxType '%s' for graph '%s': expected '' or 'static'", graph.MaxType, graph.Caption)
		}

		if graph.Color != "" {
			if err := validateColors(fmt.Sprintf("graph '%s' color", graph.Caption), []string{graph.Color}); err != nil {
				return err
			}
		}

		if graph.Height < 0 {
			return fmt.Errorf("Graph '%s' height must not be negative", graph.Caption)
		}
	}

	return nil
}

func validateVerify(verify VerifyConfig) error {
	if verify.Workers < 0 {
		return fmt.Errorf("verify.workers must not be negative, got %d", verify.Workers)
	}

	if verify.ProgressInterval < 0 {
		return fmt.Errorf("verify.progressInterval must not be negative, got %s", verify.ProgressInterval)
	}

	return nil
}
