package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jmorganca/buildvocab/cmd"
	"github.com/jmorganca/buildvocab/envconfig"
	"github.com/jmorganca/buildvocab/logutil"
)

func main() {
	err := cmd.LoadDotEnvFromConfigFolder()
	if err != nil {
		log.Fatal(err)
	}

	// pick up anything the .env file added
	envconfig.LoadConfig()
	slog.SetDefault(logutil.NewLogger(os.Stderr, logutil.Level(envconfig.Debug)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cobra.CheckErr(cmd.NewCLI().ExecuteContext(ctx))
}
