// Package main starts the flight-booking admin console and handles termination.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	admincmd "github.com/aopps/admin-console/internal/cmd/admin"
	"github.com/aopps/admin-console/internal/platform/config"
)

func main() {
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[ADMIN] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := admincmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
