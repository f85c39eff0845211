package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yndnr/cfwkv-go/internal/cli/command"
	"github.com/yndnr/cfwkv-go/internal/cli/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	env := &command.Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: config.EnvSnapshot(os.Environ()),
	}

	code := command.Run(ctx, env, os.Args)
	stop()
	os.Exit(code)
}
