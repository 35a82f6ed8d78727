package main

import (
	"os"

	"github.com/msto63/pier/cmd/pier/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
