package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/config"
	"github.com/yllada/nordvpn-tray/vpn"
)

// GUIFunc launches the tray application and returns its exit code.
type GUIFunc func(ctx context.Context, cfg *config.Config) int

// Options are the persistent flags shared by every command.
type Options struct {
	Verbose    bool
	LogFile    bool
	ConfigPath string
	Binary     string
}

type app struct {
	opts      Options
	cfg       *config.Config
	newRunner func(binary string) *vpn.Runner
}

// NewRootCommand creates the nordvpn-tray command tree. Without a
// subcommand it launches the tray through runGUI.
func NewRootCommand(version string, runGUI GUIFunc) *cobra.Command {
	return newRootCommand(version, runGUI, func(binary string) *vpn.Runner {
		return vpn.NewRunner(binary)
	})
}

func newRootCommand(version string, runGUI GUIFunc, newRunner func(string) *vpn.Runner) *cobra.Command {
	a := &app{newRunner: newRunner}

	root := &cobra.Command{
		Use:           "nordvpn-tray",
		Short:         "System tray front-end for the nordvpn CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := runGUI(cmd.Context(), a.cfg); code != 0 {
				return fmt.Errorf("tray exited with code %d", code)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&a.opts.LogFile, "log-file", false, "Also write logs to the data directory")
	flags.StringVar(&a.opts.ConfigPath, "config", "", "Configuration file (default "+config.DefaultPath()+")")
	flags.StringVar(&a.opts.Binary, "binary", "", "nordvpn executable (overrides the config file)")

	root.AddCommand(
		a.simpleCmd("status", "Show the connection status", (*CLI).Status),
		a.simpleCmd("account", "Show the account information", (*CLI).Account),
		a.simpleCmd("settings", "List the nordvpn settings", (*CLI).Settings),
		a.simpleCmd("countries", "List the available countries", (*CLI).Countries),
		a.citiesCmd(),
		a.connectCmd(),
		a.simpleCmd("disconnect", "Disconnect the VPN", (*CLI).Disconnect),
		a.simpleCmd("doctor", "Check that nordvpn is installed and its daemon is running", (*CLI).Doctor),
		newVersionCmd(version),
	)
	return root
}

func (a *app) setup() error {
	level := common.LevelInfo
	if a.opts.Verbose {
		level = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:      level,
		EnableFile: a.opts.LogFile,
	}); err != nil {
		common.LogWarn("Failed to enable file logging: %v", err)
	}

	var err error
	if a.opts.ConfigPath != "" {
		a.cfg, err = config.LoadFrom(a.opts.ConfigPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		if a.cfg == nil {
			return err
		}
		common.LogWarn("Configuration not saved: %v", err)
	}

	if a.opts.Binary != "" {
		a.cfg.Binary = a.opts.Binary
	}
	return nil
}

func (a *app) cli(cmd *cobra.Command) *CLI {
	styled := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return New(a.newRunner(a.cfg.Binary), a.cfg, cmd.OutOrStdout(), styled)
}

func (a *app) simpleCmd(use, short string, run func(*CLI, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a.cli(cmd), cmd.Context())
		},
	}
}

func (a *app) citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities <country>",
		Short: "List the cities of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli(cmd).Cities(cmd.Context(), args[0])
		},
	}
}

func (a *app) connectCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "connect [country [city]]",
		Short: "Connect to the fastest server, a country, a city or a server number",
		Example: `  nordvpn-tray connect
  nordvpn-tray connect Germany Berlin
  nordvpn-tray connect United_States --server 123`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cli(cmd)
			if len(args) == 0 && server == "" {
				return c.QuickConnect(cmd.Context(), "")
			}

			var target vpn.Target
			if len(args) > 0 {
				target.Country = args[0]
			}
			if len(args) > 1 {
				target.City = args[1]
			}
			target.Server = server
			return c.Connect(cmd.Context(), target)
		},
	}
	cmd.Flags().StringVarP(&server, "server", "s", "", "Server number in the country, e.g. 123 for de123")
	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", common.AppName, version)
		},
	}
}
