package main

import (
	"os"

	"github.com/patrickmoura/gomovie/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
