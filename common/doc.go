// Package common provides shared constants, types, and utilities
// used throughout NordVPN Tray.
//
// This package holds the cross-cutting concerns:
//
//   - Constants: application metadata, file names, intervals and window sizes
//   - Errors: sentinel errors checked with errors.Is across packages
//   - State: the coarse connection state shown by the tray and the CLI
//   - Logger: levelled logging with optional rotated file output
//   - Utils: directory helpers and display formatting
//
// # Usage
//
//	import "github.com/yllada/nordvpn-tray/common"
//
//	common.LogInfo("Connecting to %s", country)
//
//	if errors.Is(err, common.ErrProcessFailed) {
//	    // show the CLI's message to the user
//	}
package common
