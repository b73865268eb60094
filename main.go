package main

import (
	"fmt"
	"os"

	"github.com/gopak/minigrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.ErrorMessage(err))
		os.Exit(1)
	}
}
