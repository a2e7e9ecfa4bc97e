package main

import (
	"fmt"
	"os"

	"github.com/diegok/retropong/internal/app"
	"github.com/diegok/retropong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  retropong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <path>     Display config file (YAML)")
	fmt.Fprintln(os.Stderr, "  --debug             Write a debug log")
	fmt.Fprintln(os.Stderr, "  --log <path>        Debug log file (default: retropong.log)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w/s or arrow keys   Move the left paddle")
	fmt.Fprintln(os.Stderr, "  q or Esc            Quit")
}
