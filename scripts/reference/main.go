// This "script" generates or checks the Reference_{{.LANG}}.md files in
// docs/reference.
//
// To regenerate them run:
//   go run scripts/reference/main.go generate
//
// To check that they are up to date, as CI does, run:
//   go run scripts/reference/main.go check

package main

import (
	"fmt"
	"os"

	"github.com/jesseduffield/lazysdes/pkg/cheatsheet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "generate":
		cheatsheet.Generate()
	case "check":
		cheatsheet.Check()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: go run scripts/reference/main.go [generate|check]")
	os.Exit(1)
}
