package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/dotctl/cmd/dotctl"
	"github.com/arthur-debert/dotctl/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := dotctl.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !dotctl.Silent(err) {
			p := ui.NewPrinter(os.Stderr, ui.DetectFormat(os.Stderr))
			p.Failure(fmt.Sprintf("Error: %v", err))
		}
		os.Exit(dotctl.ExitCode(err))
	}
}
