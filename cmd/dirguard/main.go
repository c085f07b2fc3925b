package main

import (
	"fmt"
	"os"

	"github.com/sonemaro/dirguard/cmd/dirguard/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
