package main

import (
	"os"

	"github.com/numword/numword/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
