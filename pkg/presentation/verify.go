package presentation

import (
	"strconv"
	"strings"
	"time"

	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/utils"
	"github.com/jesseduffield/lazysdes/pkg/verify"
	"github.com/samber/lo"
)

// maxRenderedFailures caps how many failures we list
const maxRenderedFailures = 20

// RenderVerifyResult renders the outcome of an exhaustive sweep
func RenderVerifyResult(result *verify.Result, tr *i18n.TranslationSet, userConfig *config.UserConfig) (string, error) {
	theme := NewTheme(userConfig.Gui.Theme)

	sections := []string{theme.Title.Render(tr.VerifyTitle)}

	if result.Ok() {
		line := utils.ResolvePlaceholderString(tr.VerifySuccessLine, map[string]string{
			"pairs":   strconv.Itoa(result.PairsChecked),
			"elapsed": result.Elapsed.Round(time.Millisecond).String(),
		})
		sections = append(sections, theme.Info.Render(line))

		return strings.Join(sections, "\n\n"), nil
	}

	line := utils.ResolvePlaceholderString(tr.VerifyFailureLine, map[string]string{
		"failures": strconv.Itoa(len(result.Failures)),
	})
	sections = append(sections, theme.Highlight.Render(line))

	list, err := renderFailureList(result.Failures, tr)
	if err != nil {
		return "", err
	}
	sections = append(sections, list)

	return strings.Join(sections, "\n\n"), nil
}

// RenderVectorCheck renders the outcome of checking reference vectors
func RenderVectorCheck(count int, failures []*verify.Failure, tr *i18n.TranslationSet, userConfig *config.UserConfig) (string, error) {
	theme := NewTheme(userConfig.Gui.Theme)

	if len(failures) == 0 {
		line := utils.ResolvePlaceholderString(tr.VerifyVectorsLine, map[string]string{
			"count": strconv.Itoa(count),
		})

		return theme.Info.Render(line), nil
	}

	line := utils.ResolvePlaceholderString(tr.VerifyFailureLine, map[string]string{
		"failures": strconv.Itoa(len(failures)),
	})

	list, err := renderFailureList(failures, tr)
	if err != nil {
		return "", err
	}

	return theme.Highlight.Render(line) + "\n\n" + list, nil
}

// RenderProgress renders a one line progress update for the sweep
func RenderProgress(progress verify.Progress, tr *i18n.TranslationSet) string {
	return utils.ResolvePlaceholderString(tr.VerifyProgressLine, map[string]string{
		"done":  strconv.Itoa(progress.KeysDone),
		"total": strconv.Itoa(progress.KeysTotal),
	})
}

// renderFailureList renders failures as a list, capped at maxRenderedFailures rows
func renderFailureList(failures []*verify.Failure, tr *i18n.TranslationSet) (string, error) {
	rendered := failures
	if len(rendered) > maxRenderedFailures {
		rendered = rendered[:maxRenderedFailures]
	}

	displayables := lo.Map(rendered, func(failure *verify.Failure, _ int) utils.Displayable {
		return failure
	})

	header := []string{
		strings.ToUpper(tr.KeyColumnTitle),
		strings.ToUpper(tr.BlockColumnTitle),
		strings.ToUpper(tr.CiphertextColumnTitle),
		strings.ToUpper(tr.ReasonColumnTitle),
	}

	list, err := utils.RenderList(displayables, utils.WithHeader(header))
	if err != nil {
		return "", err
	}

	if len(failures) > maxRenderedFailures {
		more := utils.ResolvePlaceholderString(tr.MoreFailuresLine, map[string]string{
			"count": strconv.Itoa(len(failures) - maxRenderedFailures),
		})
		list += "\n" + more
	}

	return list, nil
}
