package main

import (
	"os"

	"github.com/mattphotonman/Financial/cmd/horizon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
