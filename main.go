package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/hazelcast/cache-config-engine/internal/cli"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
	"github.com/hazelcast/cache-config-engine/internal/util"
)

func main() {
	var (
		zapLog *zap.Logger
		err    error
	)
	if util.IsDeveloperModeEnabled() {
		zapLog, err = zap.NewDevelopment()
	} else {
		zapLog, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync() //nolint:errcheck

	log := zapr.NewLogger(zapLog).WithName(n.ConsoleName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cli.NewRootCommand(log).ExecuteContext(ctx)
	stop()
	if err != nil {
		log.V(1).Info("Command failed", "error", err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		zapLog.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
