package main

import (
	"os"

	"smartenum/cmd/enumctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
