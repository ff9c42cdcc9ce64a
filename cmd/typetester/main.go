package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/tbc02/pokecalc-plus/pkg/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.NewRoot(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("typetester failed")
		cancel()
		os.Exit(1)
	}
}
