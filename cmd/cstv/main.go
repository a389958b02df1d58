// Package main is the entry point for the cstv CLI.
package main

import (
	"os"

	"github.com/pbvote/cstv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
