package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "win2nix: %v\n", err)
		os.Exit(1)
	}
}
