package presentation

import (
	"strings"

	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
)

// RenderSchedule renders the derivation of both round subkeys from the
// master key, one table row per step
func RenderSchedule(master sdes.Bits, schedule *sdes.KeySchedule, tr *i18n.TranslationSet, userConfig *config.UserConfig) (string, error) {
	theme := NewTheme(userConfig.Gui.Theme)

	rows := [][]string{
		{strings.ToUpper(tr.StepColumnTitle), strings.ToUpper(tr.BitsColumnTitle)},
	}
	if userConfig.Gui.ShowIndexes {
		rows = append(rows, []string{"", bitRuler(len(master))})
	}
	rows = append(rows,
		[]string{"key", master.String()},
		[]string{"P10", schedule.Permuted.String()},
		[]string{"LS-1", halves(schedule.LeftOne, schedule.RightOne)},
		[]string{"K1 = P8", theme.Highlight.Render(schedule.K1.String())},
		[]string{"LS-3", halves(schedule.LeftThree, schedule.RightThree)},
		[]string{"K2 = P8", theme.Highlight.Render(schedule.K2.String())},
	)

	table, err := utils.RenderTable(rows)
	if err != nil {
		return "", err
	}

	return theme.Title.Render(tr.ScheduleTitle) + "\n" + table, nil
}

// halves renders the two register halves side by side
func halves(left, right sdes.Bits) string {
	return left.String() + " " + right.String()
}

// bitRuler numbers the bit positions so permutation tables can be checked
// by eye. Positions past 9 keep only their final digit.
func bitRuler(width int) string {
	var builder strings.Builder
	for i := 1; i <= width; i++ {
		builder.WriteByte(byte('0' + i%10))
	}

	return builder.String()
}
