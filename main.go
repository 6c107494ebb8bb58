// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"kiri/internal/config"
	"kiri/repl"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the Kiri REPL, %s! Type :quit to exit.\n", name)
	if err := repl.Start(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "REPL failed: %v\n", err)
		os.Exit(1)
	}
}
