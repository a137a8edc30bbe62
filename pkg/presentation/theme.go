package presentation

import (
	"github.com/gookit/color"
	"github.com/jesseduffield/lazysdes/pkg/config"
)

// Theme holds the render styles derived from the user's theme config
type Theme struct {
	Title     color.Style
	Highlight color.Style
	Info      color.Style
}

// NewTheme returns the styles to render a report with
func NewTheme(themeConfig config.ThemeConfig) *Theme {
	return &Theme{
		Title:     GetColorStyle(themeConfig.TitleColor),
		Highlight: GetColorStyle(themeConfig.HighlightColor),
		Info:      GetColorStyle(themeConfig.InfoTextColor),
	}
}

// GetColorStyle turns a list of color attribute names into a style.
// Names with no matching attribute are skipped.
func GetColorStyle(keys []string) color.Style {
	colorMap := map[string]color.Color{
		"default":   color.FgDefault,
		"black":     color.FgBlack,
		"red":       color.FgRed,
		"green":     color.FgGreen,
		"yellow":    color.FgYellow,
		"blue":      color.FgBlue,
		"magenta":   color.FgMagenta,
		"cyan":      color.FgCyan,
		"white":     color.FgWhite,
		"bold":      color.OpBold,
		"underline": color.OpUnderscore,
	}

	style := color.New()
	for _, key := range keys {
		if value, present := colorMap[key]; present {
			style = append(style, value)
		}
	}

	return style
}
