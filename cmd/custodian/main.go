package main

import (
	"os"

	"github.com/rustyeddy/custodian/cmd/custodian/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
