package presentation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/jesseduffield/asciigraph"
	"github.com/jesseduffield/lazysdes/pkg/avalanche"
	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
	"github.com/mcuadros/go-lookup"
	"github.com/samber/lo"
)

// RenderAnalysis renders the avalanche flip tables, a graph per configured
// series, and the raw analysis as yaml
func RenderAnalysis(analysis *avalanche.Analysis, tr *i18n.TranslationSet, userConfig *config.UserConfig) (string, error) {
	theme := NewTheme(userConfig.Gui.Theme)

	baseLine := utils.ResolvePlaceholderString(tr.BaseCiphertextLine, map[string]string{
		"bits": analysis.BaseCiphertext.String(),
	})

	sections := []string{
		theme.Title.Render(tr.AvalancheTitle),
		theme.Info.Render(baseLine),
	}

	plaintextTable, err := renderFlipTable(tr.AvalanchePlaintextTitle, analysis.PlaintextFlips, analysis.BaseCiphertext, tr, theme)
	if err != nil {
		return "", err
	}
	sections = append(sections, plaintextTable)

	keyTable, err := renderFlipTable(tr.AvalancheKeyTitle, analysis.KeyFlips, analysis.BaseCiphertext, tr, theme)
	if err != nil {
		return "", err
	}
	sections = append(sections, keyTable)

	for _, spec := range userConfig.Stats.Graphs {
		graph, err := plotGraph(analysis, spec)
		if err != nil {
			return "", err
		}

		sections = append(sections, utils.ColoredString(graph, utils.GetColorAttribute(spec.Color)))
	}

	originalAnalysis, err := utils.MarshalIntoYaml(analysis)
	if err != nil {
		return "", err
	}
	sections = append(sections, utils.ColoredYamlString(string(originalAnalysis)))

	return strings.Join(sections, "\n\n"), nil
}

// renderFlipTable renders one flip series as a table with the changed
// ciphertext bits highlighted, followed by the mean distance
func renderFlipTable(title string, flips []avalanche.FlipResult, base sdes.Bits, tr *i18n.TranslationSet, theme *Theme) (string, error) {
	rows := [][]string{
		{strings.ToUpper(tr.FlipColumnTitle), strings.ToUpper(tr.CiphertextColumnTitle), strings.ToUpper(tr.DistanceColumnTitle)},
	}
	for _, flip := range flips {
		rows = append(rows, []string{
			strconv.Itoa(flip.Position),
			highlightDifferences(base, flip.Ciphertext, theme),
			strconv.Itoa(flip.Distance),
		})
	}

	table, err := utils.RenderTable(rows)
	if err != nil {
		return "", err
	}

	meanLine := utils.ResolvePlaceholderString(tr.MeanDistanceLine, map[string]string{
		"mean": fmt.Sprintf("%0.2f", avalanche.Mean(flips)),
	})

	return theme.Title.Render(title) + "\n" + table + "\n" + theme.Info.Render(meanLine), nil
}

// highlightDifferences renders the ciphertext with every bit that differs
// from the base colored
func highlightDifferences(base, bits sdes.Bits, theme *Theme) string {
	var builder strings.Builder
	for i, bit := range bits {
		rendered := strconv.Itoa(bit)
		if i < len(base) && base[i] != bit {
			rendered = theme.Highlight.Render(rendered)
		}
		builder.WriteString(rendered)
	}

	return builder.String()
}

// plotGraph returns the plotted graph based on the graph spec and one of the
// analysis' flip series
func plotGraph(analysis *avalanche.Analysis, spec config.GraphConfig) (string, error) {
	flips := seriesFor(analysis, spec.Series)

	data := make([]float64, len(flips))

	for i, flip := range flips {
		value, err := lookup.LookupString(flip, spec.StatPath)
		if err != nil {
			return "Could not find key: " + spec.StatPath, nil
		}
		floatValue, err := getFloat(value.Interface())
		if err != nil {
			return "", err
		}

		data[i] = floatValue
	}

	max := spec.Max
	if spec.MaxType == "" {
		max = lo.Max(data)
	}

	min := spec.Min
	if spec.MinType == "" {
		min = lo.Min(data)
	}

	height := 10
	if spec.Height > 0 {
		height = spec.Height
	}

	width := 4 * len(data)
	if spec.Width > 0 {
		width = spec.Width
	}

	caption := fmt.Sprintf(
		"%s: %0.2f",
		spec.Caption,
		avalanche.Mean(flips),
	)

	return asciigraph.Plot(
		data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Min(min),
		asciigraph.Max(max),
		asciigraph.Caption(caption),
	), nil
}

// seriesFor picks the flip series a graph spec asks for
func seriesFor(analysis *avalanche.Analysis, series string) []avalanche.FlipResult {
	if series == config.SeriesKey {
		return analysis.KeyFlips
	}

	return analysis.PlaintextFlips
}

// from Dave C's answer at https://stackoverflow.com/questions/20767724/converting-unknown-interface-to-float64-in-golang
func getFloat(unk interface{}) (float64, error) {
	floatType := reflect.TypeOf(float64(0))
	stringType := reflect.TypeOf("")

	switch i := unk.(type) {
	case float64:
		return i, nil
	case float32:
		return float64(i), nil
	case int64:
		return float64(i), nil
	case int32:
		return float64(i), nil
	case int:
		return float64(i), nil
	case uint64:
		return float64(i), nil
	case uint32:
		return float64(i), nil
	case uint:
		return float64(i), nil
	case string:
		return strconv.ParseFloat(i, 64)
	default:
		v := reflect.ValueOf(unk)
		v = reflect.Indirect(v)
		if v.Type().ConvertibleTo(floatType) {
			fv := v.Convert(floatType)
			return fv.Float(), nil
		} else if v.Type().ConvertibleTo(stringType) {
			sv := v.Convert(stringType)
			s := sv.String()
			return strconv.ParseFloat(s, 64)
		} else {
			return math.NaN(), fmt.Errorf("Can't convert %v to float64", v.Type())
		}
	}
}
