// This "script" generates a file called Reference_{{.LANG}}.md
// in the docs/reference directory.
//
// The content of this generated file is a reference card: the cipher's
// tables plus a worked key schedule and encryption.
//
// To generate the reference in english run:
//   LANG=en go run scripts/reference/main.go generate

package cheatsheet

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jesseduffield/lazysdes/pkg/app"
	"github.com/jesseduffield/lazysdes/pkg/config"
	"github.com/jesseduffield/lazysdes/pkg/i18n"
	"github.com/jesseduffield/lazysdes/pkg/presentation"
	"github.com/jesseduffield/lazysdes/pkg/sdes"
	"github.com/jesseduffield/lazysdes/pkg/utils"
)

const (
	generateReferenceCmd = "go run scripts/reference/main.go generate"

	// the textbook example pair
	exampleKey   = "1010000010"
	exampleBlock = "11010111"
)

type permutationTable struct {
	name  string
	order []int
}

func Generate() {
	generateAtDir(GetReferenceDir())
}

func generateAtDir(dir string) {
	mConfig, err := config.NewAppConfig("lazysdes", "", "", "", "", true)
	if err != nil {
		panic(err)
	}
	mConfig.UserConfig.Gui.ShowIndexes = true

	for lang := range i18n.GetTranslationSets() {
		os.Setenv("LC_ALL", lang)
		mApp, _ := app.NewApp(mConfig)

		file, err := os.Create(dir + "/Reference_" + lang + ".md")
		if err != nil {
			panic(err)
		}

		content := formatReference(mApp)
		content = fmt.Sprintf(
			"_This file is auto-generated. To update, make the changes in the "+
				"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
			generateReferenceCmd,
			content,
		)
		writeString(file, content)
	}
}

func writeString(file *os.File, str string) {
	_, err := file.WriteString(str)
	if err != nil {
		log.Fatal(err)
	}
}

func formatTitle(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

func formatReference(mApp *app.App) string {
	content := fmt.Sprintf("# Lazysdes %s\n", mApp.Tr.ReferenceTitle)

	content += formatTitle(mApp.Tr.ReferenceTablesTitle)
	content += formatTables()

	content += formatTitle(mApp.Tr.ReferenceScheduleTitle)
	content += preformatted(renderedSchedule(mApp))

	content += formatTitle(mApp.Tr.ReferenceTraceTitle)
	content += preformatted(renderedTrace(mApp))

	content += formatTitle(mApp.Tr.ReferenceCommandsTitle)
	content += preformatted(commandExamples())

	return content
}

func formatTables() string {
	tables := []permutationTable{
		{"P10", sdes.P10},
		{"P8", sdes.P8},
		{"IP", sdes.IP},
		{"IP^-1", sdes.IPInverse},
		{"E/P", sdes.EP},
		{"P4", sdes.P4},
	}

	content := "<pre>\n"
	for _, table := range tables {
		content += fmt.Sprintf("  %-5s %s\n", table.name, joinOrder(table.order))
	}
	content += "\n"
	content += formatSbox("S0", sdes.S0)
	content += formatSbox("S1", sdes.S1)
	content += "</pre>\n"

	return content
}

func joinOrder(order []int) string {
	rendered := make([]string, len(order))
	for i, position := range order {
		rendered[i] = strconv.Itoa(position)
	}

	return strings.Join(rendered, " ")
}

func formatSbox(name string, box [4][4]int) string {
	content := ""
	for i, row := range box {
		label := "     "
		if i == 0 {
			label = fmt.Sprintf("  %-3s", name)
		}
		content += fmt.Sprintf("%s %s\n", label, joinOrder(row[:]))
	}

	return content
}

func renderedSchedule(mApp *app.App) string {
	key := mustParse(exampleKey)

	schedule, err := sdes.NewKeySchedule(key)
	if err != nil {
		panic(err)
	}

	rendered, err := presentation.RenderSchedule(key, schedule, mApp.Tr, mApp.Config.UserConfig)
	if err != nil {
		panic(err)
	}

	return utils.Decolorise(rendered)
}

func renderedTrace(mApp *app.App) string {
	cipher, err := sdes.NewCipher(mustParse(exampleKey))
	if err != nil {
		panic(err)
	}

	_, trace, err := cipher.EncryptBlockTrace(mustParse(exampleBlock))
	if err != nil {
		panic(err)
	}

	rendered, err := presentation.RenderTrace(trace, mApp.Tr, mApp.Config.UserConfig)
	if err != nil {
		panic(err)
	}

	return utils.Decolorise(rendered)
}

func commandExamples() string {
	return strings.Join([]string{
		"lazysdes encrypt --key 1010000010 11010111",
		"lazysdes encrypt --random-key --trace 11010111",
		"lazysdes decrypt --key 1010000010 10101000",
		"lazysdes schedule 1010000010",
		"lazysdes avalanche 1010000010 11010111",
		"lazysdes verify",
		"lazysdes verify --file vectors.yml",
		"lazysdes config edit",
		"lazysdes docs",
	}, "\n")
}

func preformatted(content string) string {
	result := "<pre>\n"
	for _, line := range utils.SplitLines(content) {
		if line == "" {
			result += "\n"
			continue
		}
		result += "  " + line + "\n"
	}

	return result + "</pre>\n"
}

func mustParse(s string) sdes.Bits {
	bits, err := sdes.ParseBits(s)
	if err != nil {
		panic(err)
	}

	return bits
}
