package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wizapp/internal/cli/commands"
	"wizapp/internal/config"
)

// Заполняются при сборке: -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   = "dev"
	buildDate = "unknown"
)

type versionCmd struct{}

func (versionCmd) Name() string        { return "version" }
func (versionCmd) Description() string { return "Версия клиента" }
func (versionCmd) Usage() string       { return "version" }

func (versionCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 0 {
		return commands.ErrUsage
	}
	fmt.Fprintf(commands.Out, "%s %s (built %s)\n", commands.ProgramName, version, buildDate)
	return nil
}

func init() { commands.RegisterCmd(versionCmd{}) }

func main() {
	os.Exit(run())
}

func run() int {
	// env + .env + глобальные флаги (-server); остаток командной строки — команда
	cfg := config.NewConfig()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
