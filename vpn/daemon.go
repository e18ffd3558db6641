package vpn

import (
	"context"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/yllada/nordvpn-tray/common"
)

// DaemonRunning reports whether the nordvpn daemon is alive. The CLI talks
// to it over a socket, so every command fails without it.
func DaemonRunning(ctx context.Context) (bool, error) {
	return processRunning(ctx, common.DaemonProcessName)
}

func processRunning(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, common.WrapError(err, "failed to list processes")
	}

	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			// processes exit while we scan
			continue
		}
		if procName == name {
			return true, nil
		}
	}
	return false, nil
}
