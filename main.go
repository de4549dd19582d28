package main

import (
	"os"

	"github.com/asadk/hikmah/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
