package main

import (
	"os"

	"mydahanu/directory/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
