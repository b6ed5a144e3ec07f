// Package main runs the operator command line.
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	hroctl "github.com/hustredowls/redowls.club/internal/cmd/hroctl"
	entrypoint "github.com/hustredowls/redowls.club/internal/platform/cmd"
	"github.com/hustredowls/redowls.club/internal/platform/config"
)

const version = "0.1.0"

func main() {
	root := hroctl.NewRootCmd(hroctl.DefaultDeps())
	executed := false
	err := entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceHROCtl, func(ctx context.Context) error {
		executed = true
		return fang.Execute(ctx, root,
			fang.WithVersion(version),
			fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
		)
	})
	if err == nil {
		return
	}
	// fang already printed command errors.
	if !executed {
		config.Exitf("Error: %v", err)
	}
	os.Exit(1)
}
