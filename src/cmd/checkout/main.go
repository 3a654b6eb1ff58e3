package main

import (
	"fmt"
	"os"

	"github.com/jackyeh168/ddd_checkout/src/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
