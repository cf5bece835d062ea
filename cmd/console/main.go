package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/parths19/Admin-Dashboard/internal/adapters"
	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/persistence"
	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/parths19/Admin-Dashboard/internal/core"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func main() {
	injector := do.New(
		config.Package,
		core.Package,
		adapters.SecondaryPackage,
		adapters.PrimaryPackage,
	)

	cmd, err := do.Invoke[*cobra.Command](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create CLI command: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = cmd.ExecuteContext(ctx)

	if storage, invokeErr := do.Invoke[persistence.Storage](injector); invokeErr == nil {
		_ = storage.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
