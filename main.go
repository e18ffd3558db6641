// Package main provides the entry point for NordVPN Tray.
// NordVPN Tray is a system tray front-end for the nordvpn command-line
// client: it shows the connection status, connects to countries, cities
// or servers, and lists the account and settings of the CLI.
//
// Usage:
//
//	nordvpn-tray [--verbose]            start the tray
//	nordvpn-tray status|connect|...     run a single command in the terminal
//
// Environment:
//
//	The nordvpn CLI and its nordvpnd daemon must be installed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/nordvpn-tray/cli"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/config"
	"github.com/yllada/nordvpn-tray/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals (SIGINT, SIGTERM)
	setupSignalHandler(cancel)

	root := cli.NewRootCommand(versionString(), runGUI)
	err := root.ExecuteContext(ctx)
	common.CloseLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionString() string {
	if buildTime == "unknown" {
		return appVersion
	}
	return fmt.Sprintf("%s (build %s, commit %s)", appVersion, buildTime, commitSHA)
}

// runGUI starts the GTK application with the tray icon.
func runGUI(ctx context.Context, cfg *config.Config) int {
	common.LogInfo("Starting %s %s", common.AppName, appVersion)

	app := ui.NewApplication(common.AppID, appVersion, cfg)
	exitCode := app.Run(ctx, os.Args[:1])
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}

// setupSignalHandler configures graceful shutdown on SIGINT/SIGTERM.
// When a signal is received, it cancels the context to allow cleanup.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
