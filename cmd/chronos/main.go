package main

import (
	"os"

	"github.com/msto63/chronos/cmd/chronos/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
