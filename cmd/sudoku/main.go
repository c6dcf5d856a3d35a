package main

import (
	"os"

	"svw.info/sudoku-dlx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
