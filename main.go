package main

import (
	"os"

	"github.com/thenoetrevino/issueboard/cmd"
	"github.com/thenoetrevino/issueboard/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
