// Package cli provides the terminal commands of NordVPN Tray. They run the
// same nordvpn bindings as the tray, wait for the result and print it.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"text/tabwriter"

	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/config"
	"github.com/yllada/nordvpn-tray/vpn"
)

// CLI runs nordvpn commands synchronously and prints the results.
type CLI struct {
	runner *vpn.Runner
	cfg    *config.Config
	out    io.Writer
	styles styles

	// daemonCheck is replaced in tests.
	daemonCheck func(ctx context.Context) (bool, error)
	lookPath    func(file string) (string, error)
}

// New creates a CLI printing to out. styled enables colors.
func New(runner *vpn.Runner, cfg *config.Config, out io.Writer, styled bool) *CLI {
	return &CLI{
		runner:      runner,
		cfg:         cfg,
		out:         out,
		styles:      newStyles(styled),
		daemonCheck: vpn.DaemonRunning,
		lookPath:    exec.LookPath,
	}
}

func (c *CLI) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
}

// wait blocks for inv and kills the process if ctx ends first.
func wait[T any](ctx context.Context, inv *vpn.Invocation[T]) (T, error) {
	defer inv.Close()
	return inv.Wait(ctx)
}

// Status shows the current connection status.
func (c *CLI) Status(ctx context.Context) error {
	status, err := wait(ctx, c.runner.Status(nil, nil))
	if err != nil {
		return fmt.Errorf("load status failed: %w", err)
	}

	w := c.table()
	fmt.Fprintf(w, "%s\t%s\n", c.styles.key.Render("Status:"), c.styles.state(status.State()).Render(status.Status))
	if status.Connected() {
		rows := [][2]string{
			{"Country:", status.Country},
			{"City:", status.City},
			{"Server:", status.Hostname},
			{"IP:", status.IP},
			{"Technology:", status.Technology},
			{"Protocol:", status.Protocol},
			{"Uptime:", status.Uptime},
			{"Transfer:", status.Transfer},
		}
		for _, row := range rows {
			if row[1] != "" {
				fmt.Fprintf(w, "%s\t%s\n", c.styles.key.Render(row[0]), row[1])
			}
		}
	}
	return w.Flush()
}

// Account shows the logged in account.
func (c *CLI) Account(ctx context.Context) error {
	account, err := wait(ctx, c.runner.Account(nil, nil))
	if err != nil {
		return fmt.Errorf("load account failed: %w", err)
	}

	w := c.table()
	fmt.Fprintf(w, "%s\t%s\n", c.styles.key.Render("Email:"), account.Email)
	fmt.Fprintf(w, "%s\t%s\n", c.styles.key.Render("VPN Service:"), account.Service)
	return w.Flush()
}

// Settings lists the nordvpn options.
func (c *CLI) Settings(ctx context.Context) error {
	settings, err := wait(ctx, c.runner.Settings(nil, nil))
	if err != nil {
		return fmt.Errorf("load settings failed: %w", err)
	}

	rows := settings.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "No settings reported by nordvpn.")
		return nil
	}

	w := c.table()
	fmt.Fprintln(w, "SETTING\tVALUE")
	fmt.Fprintln(w, "-------\t-----")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Label, c.styles.option(row.Value).Render(row.Value))
	}
	return w.Flush()
}

// Countries lists the available countries.
func (c *CLI) Countries(ctx context.Context) error {
	countries, err := wait(ctx, c.runner.Countries(nil, nil))
	if err != nil {
		return fmt.Errorf("load countries failed: %w", err)
	}

	w := c.table()
	fmt.Fprintln(w, "COUNTRY\tCODE")
	fmt.Fprintln(w, "-------\t----")
	for _, country := range countries {
		code := country.Code
		if code == "" {
			code = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", country.Name, code)
	}
	return w.Flush()
}

// Cities lists the cities of a country.
func (c *CLI) Cities(ctx context.Context, country string) error {
	cities, err := wait(ctx, c.runner.Cities(country, nil, nil))
	if err != nil {
		return fmt.Errorf("load cities failed: %w", err)
	}

	for _, city := range cities {
		fmt.Fprintln(c.out, city)
	}
	return nil
}

// QuickConnect connects to the fastest server, in country when given or
// else in the configured quick connect country.
func (c *CLI) QuickConnect(ctx context.Context, country string) error {
	if country == "" && c.cfg != nil {
		country = c.cfg.QuickConnect()
	}

	label := "fastest server"
	if country != "" {
		label = common.DisplayName(country)
	}
	fmt.Fprintf(c.out, "Connecting to %s...\n", label)

	if _, err := wait(ctx, c.runner.QuickConnect(country, nil, nil)); err != nil {
		return fmt.Errorf("quick connect failed: %w", err)
	}
	fmt.Fprintf(c.out, "%s Connected to %s\n", c.styles.ok.Render("✓"), label)
	return nil
}

// Connect connects to target and records it in the last connected list.
func (c *CLI) Connect(ctx context.Context, target vpn.Target) error {
	inv, err := c.runner.Connect(target, nil, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Connecting to %s...\n", target.Label())
	if _, err := wait(ctx, inv); err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}
	fmt.Fprintf(c.out, "%s Connected to %s\n", c.styles.ok.Render("✓"), target.Label())

	if c.cfg != nil {
		c.cfg.AddLastConnected(config.LastConnection(target))
		if err := c.cfg.Save(); err != nil {
			common.LogWarn("Failed to save last connected: %v", err)
		}
	}
	return nil
}

// Disconnect closes the tunnel.
func (c *CLI) Disconnect(ctx context.Context) error {
	if _, err := wait(ctx, c.runner.Disconnect(nil, nil)); err != nil {
		return fmt.Errorf("disconnect failed: %w", err)
	}
	fmt.Fprintf(c.out, "%s Disconnected\n", c.styles.ok.Render("✓"))
	return nil
}

// Doctor checks that the nordvpn binary and daemon are available.
func (c *CLI) Doctor(ctx context.Context) error {
	var failed bool
	check := func(name string, err error, detail string) {
		if err != nil {
			failed = true
			fmt.Fprintf(c.out, "%s %s: %v\n", c.styles.bad.Render("✗"), name, err)
			return
		}
		fmt.Fprintf(c.out, "%s %s: %s\n", c.styles.ok.Render("✓"), name, detail)
	}

	path, err := c.lookPath(c.runner.Binary())
	check("nordvpn binary", err, path)

	running, err := c.daemonCheck(ctx)
	if err == nil && !running {
		err = common.ErrDaemonNotRunning
	}
	check("nordvpn daemon", err, common.DaemonProcessName+" is running")

	if c.cfg != nil {
		fmt.Fprintf(c.out, "  config: %s\n", c.cfg.Path())
	}
	if log := common.GetLogDir(); log != "" {
		fmt.Fprintf(c.out, "  logs:   %s\n", log)
	}

	if failed {
		return errors.New("some checks failed")
	}
	return nil
}
