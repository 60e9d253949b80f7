package main

import (
	"os"

	"github.com/arjun/codequest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
