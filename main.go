package main

import (
	"os"

	"github.com/zaki1905/kirchhoff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
