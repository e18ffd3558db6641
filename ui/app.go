package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/nordvpn-tray/assets"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/config"
	"github.com/yllada/nordvpn-tray/notify"
	"github.com/yllada/nordvpn-tray/vpn"
)

// Application represents the main application. All fields are owned by
// the GTK main thread.
type Application struct {
	app      *gtk.Application
	cfg      *config.Config
	client   *vpn.Client
	poller   *vpn.StatusPoller
	icons    *assets.Cache
	notifier common.Notifier
	version  string

	tray   *TrayIndicator
	window *SettingsWindow

	// status is nil until the first status is loaded.
	status  *vpn.Status
	loading bool
	err     string
}

// mainThread runs f on the GTK main loop.
func mainThread(f func()) {
	glib.IdleAdd(f)
}

// NewApplication creates a new application
func NewApplication(appID, version string, cfg *config.Config) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	runner := vpn.NewRunner(cfg.Binary, vpn.WithDispatcher(mainThread))
	client := vpn.NewClient(runner)

	application := &Application{
		app:      app,
		cfg:      cfg,
		client:   client,
		poller:   vpn.NewStatusPoller(client, cfg.StatusInterval),
		icons:    assets.NewCache(assets.DefaultDirs()...),
		notifier: notify.New(func() bool { return cfg.ShowNotifications }),
		version:  version,
	}

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application until Exit is chosen or ctx is cancelled.
func (a *Application) Run(ctx context.Context, args []string) int {
	stop := context.AfterFunc(ctx, func() {
		mainThread(a.quit)
	})
	defer stop()
	return a.app.Run(args)
}

// onActivate is called when the application is activated. A second launch
// activates the running instance, which then opens the settings window.
func (a *Application) onActivate() {
	if a.tray != nil {
		a.openSettings()
		return
	}

	common.LogDebug("Activating %s %s", common.AppName, a.version)

	// The app has no window until the user opens the settings.
	a.app.Hold()

	a.setupAppIcon()
	LoadStyles()

	a.tray = NewTrayIndicator(a)
	go a.tray.Run()

	a.poller.SetOnRefresh(func() {
		mainThread(a.onLoading)
	})
	a.poller.SetOnStatus(a.onStatus)
	a.poller.SetOnError(a.onStatusError)
	a.poller.Start()

	go a.checkDaemon()
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}
	for _, dir := range assets.DefaultDirs() {
		iconTheme.AddSearchPath(dir)
	}

	gtk.WindowSetDefaultIconName(assets.IconName(common.StateUnknown))
}

// checkDaemon warns in the tray when nordvpnd is not running. It runs on
// its own goroutine.
func (a *Application) checkDaemon() {
	running, err := vpn.DaemonRunning(context.Background())
	if err != nil {
		common.LogWarn("Daemon check failed: %v", err)
		return
	}
	if !running {
		mainThread(func() {
			a.setError(fmt.Sprintf("%s is not running", common.DaemonProcessName))
		})
	}
}

// loadStatus refreshes the status unless a request is pending.
func (a *Application) loadStatus() {
	a.poller.Refresh()
}

func (a *Application) onLoading() {
	a.loading = true
	a.render()
}

func (a *Application) onStatus(s vpn.Status) {
	prev := a.status
	a.status = &s
	a.loading = false
	a.render()

	if prev != nil && prev.Connected() && !s.Connected() && !a.client.Connecting() {
		a.notifier.Disconnected()
	}
}

func (a *Application) onStatusError(err error) {
	a.loading = false
	a.status = nil
	a.setError(fmt.Sprintf("Load status failed: %s", err))
}

// setBusy shows a transitional status while a connect or disconnect runs.
func (a *Application) setBusy(text string) {
	a.status = &vpn.Status{Status: text}
	a.render()
}

// quickConnect connects to the configured quick connect country.
func (a *Application) quickConnect() {
	country := a.cfg.QuickConnect()
	started := a.client.QuickConnect(country,
		func() {
			a.loadStatus()
			a.render()
			dest := country
			if dest == "" {
				dest = "fastest server"
			}
			a.notifier.Connected(common.DisplayName(dest))
		},
		func(err error) {
			a.setError(fmt.Sprintf("Quick connect failed: %s", err))
			a.notifier.Error("Quick connect failed", err.Error())
			a.loadStatus()
		},
	)
	if started {
		a.clearError()
		a.setBusy("Connecting...")
	}
}

// connect connects to target and records it in the last connected list.
func (a *Application) connect(target vpn.Target) {
	started, err := a.client.Connect(target,
		func() {
			a.cfg.AddLastConnected(config.LastConnection(target))
			if err := a.cfg.Save(); err != nil {
				common.LogError("Failed to save last connected: %v", err)
			}
			a.loadStatus()
			a.render()
			a.renderLastConnected()
			a.notifier.Connected(target.Label())
		},
		func(err error) {
			a.setError(fmt.Sprintf("Connect failed: %s", err))
			a.notifier.Error("Connect failed", err.Error())
			a.loadStatus()
		},
	)
	if err != nil {
		a.setError(fmt.Sprintf("Connect failed: %s", err))
		return
	}
	if started {
		a.clearError()
		a.setBusy("Connecting...")
	}
}

// disconnect disconnects the VPN.
func (a *Application) disconnect() {
	started := a.client.Disconnect(
		func() {
			a.loadStatus()
			a.render()
			a.notifier.Disconnected()
		},
		func(err error) {
			a.setError(fmt.Sprintf("Disconnect failed: %s", err))
			a.notifier.Error("Disconnect failed", err.Error())
			a.loadStatus()
		},
	)
	if started {
		a.clearError()
		a.setBusy("Disconnecting...")
	}
}

func (a *Application) setError(msg string) {
	common.LogError("%s", msg)
	a.err = msg
	a.render()
}

func (a *Application) clearError() {
	a.err = ""
}

// render pushes the current state to the tray and the settings window.
func (a *Application) render() {
	connecting := a.client.Connecting()
	if a.tray != nil {
		a.tray.Render(a.status, a.loading, connecting, a.err)
	}
	if a.window != nil {
		a.window.Render(a.status, connecting, a.err)
	}
}

// renderLastConnected re-renders the last connected menu.
func (a *Application) renderLastConnected() {
	if a.tray != nil {
		a.tray.RenderLastConnected(a.cfg.LastConnected(), a.client.Connecting())
	}
}

// openSettings shows the settings window, creating it on first use.
func (a *Application) openSettings() {
	if a.window == nil {
		a.window = NewSettingsWindow(a)
	}
	a.window.Render(a.status, a.client.Connecting(), a.err)
	a.window.Present()
}

// quit stops polling, cancels pending commands and leaves the main loop.
func (a *Application) quit() {
	common.LogInfo("Shutting down")
	a.poller.Stop()
	a.client.Close()
	systray.Quit()
	a.app.Quit()
}
