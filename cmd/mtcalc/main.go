package main

import (
	"os"

	"github.com/abstratium-informatique-sarl/mtypes/cmd/mtcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
