// Package main provides a desktop-style decimal calculator on the terminal,
// or as an MCP tool server on stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/govalues/calc/internal/config"

	calccmd "github.com/govalues/calc/internal/cmd/calc"
)

func main() {
	cfg, err := calccmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[calc] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := calccmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("run calc: %v", err)
	}
}
