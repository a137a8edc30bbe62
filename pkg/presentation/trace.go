package presentation

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
)

// RenderTrace renders every intermediate value of an encryption or
// decryption, one section per round
func RenderTrace(trace *sdes.Trace, tr *i18n.TranslationSet, userConfig *config.UserConfig) (string, error) {
	theme := NewTheme(userConfig.Gui.Theme)

	title := tr.TraceEncryptTitle
	if trace.Decrypting {
		title = tr.TraceDecryptTitle
	}

	sections := []string{theme.Title.Render(title)}
	if trace.Decrypting {
		sections = append(sections, theme.Info.Render(tr.SubkeysReversedNote))
	}

	inputRows := [][]string{
		{strings.ToUpper(tr.StepColumnTitle), strings.ToUpper(tr.BitsColumnTitle)},
	}
	if userConfig.Gui.ShowIndexes {
		inputRows = append(inputRows, []string{"", bitRuler(len(trace.Input))})
	}
	inputRows = append(inputRows,
		[]string{"input", trace.Input.String()},
		[]string{"IP", trace.AfterIP.String()},
	)

	inputTable, err := utils.RenderTable(inputRows)
	if err != nil {
		return "", err
	}
	sections = append(sections, inputTable)

	for i, round := range trace.Rounds {
		section, err := renderRound(i+1, round, tr, theme)
		if err != nil {
			return "", err
		}
		sections = append(sections, section)
	}

	outputRows := [][]string{
		{"preoutput", trace.Preoutput.String()},
		{"IP^-1", theme.Highlight.Render(trace.Output.String())},
	}

	outputTable, err := utils.RenderTable(outputRows)
	if err != nil {
		return "", err
	}
	sections = append(sections, outputTable)

	return strings.Join(sections, "\n\n"), nil
}

// renderRound renders one Feistel round as a table of the values it produced
func renderRound(number int, round sdes.RoundTrace, tr *i18n.TranslationSet, theme *Theme) (string, error) {
	rows := [][]string{
		{"subkey", theme.Highlight.Render(round.Subkey.String())},
		{"halves", halves(round.InputLeft, round.InputRight)},
		{"E/P", round.Expanded.String()},
		{"xor", round.Mixed.String()},
		{"S-boxes", round.Substituted.String()},
		{"P4", round.RoundOutput.String()},
		{"output", halves(round.OutputLeft, round.OutputRight)},
	}

	table, err := utils.RenderTable(rows)
	if err != nil {
		return "", err
	}

	section := theme.Title.Render(fmt.Sprintf("%s %d", tr.RoundTitle, number)) + "\n" + table
	if round.Swapped {
		section += "\n" + theme.Info.Render(tr.SwappedNote)
	}

	return section, nil
}
