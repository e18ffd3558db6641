// Package notify shows desktop notifications for connection events.
package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/nordvpn-tray/common"
)

// Kind represents the type of notification.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// Notification represents a desktop notification.
type Notification struct {
	Title   string
	Message string
	Kind    Kind
	Icon    string
}

// IconName returns the freedesktop icon of the notification.
func (n Notification) IconName() string {
	if n.Icon != "" {
		return n.Icon
	}
	switch n.Kind {
	case KindWarning:
		return "dialog-warning"
	case KindError:
		return "dialog-error"
	default:
		return "network-vpn"
	}
}

// Urgency returns the freedesktop urgency level: 0 low, 1 normal, 2 critical.
func (n Notification) Urgency() byte {
	switch n.Kind {
	case KindError:
		return 2
	case KindWarning:
		return 1
	default:
		return 0
	}
}

// Sender delivers a notification to the desktop.
type Sender interface {
	Send(n Notification) error
}

// DBusSender talks to org.freedesktop.Notifications on the session bus.
type DBusSender struct{}

// Send implements Sender.
func (DBusSender) Send(n Notification) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(n.Urgency()),
	}
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		common.AppName, uint32(0), n.IconName(), n.Title, n.Message,
		[]string{}, hints, int32(-1))
	return call.Err
}

// CommandSender runs notify-send.
type CommandSender struct{}

var urgencyNames = [...]string{"low", "normal", "critical"}

// Send implements Sender.
func (CommandSender) Send(n Notification) error {
	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+n.IconName(),
		"--urgency="+urgencyNames[n.Urgency()],
		n.Title,
		n.Message,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Notifier sends connection notifications, trying each sender in order.
type Notifier struct {
	enabled func() bool
	senders []Sender
}

var _ common.Notifier = (*Notifier)(nil)

// New creates a Notifier using D-Bus with a notify-send fallback. enabled
// is consulted before each notification; nil means always.
func New(enabled func() bool) *Notifier {
	return NewWithSenders(enabled, DBusSender{}, CommandSender{})
}

// NewWithSenders creates a Notifier over explicit senders.
func NewWithSenders(enabled func() bool, senders ...Sender) *Notifier {
	return &Notifier{enabled: enabled, senders: senders}
}

// Show delivers n with the first sender that succeeds.
func (nt *Notifier) Show(n Notification) {
	if nt.enabled != nil && !nt.enabled() {
		return
	}
	for _, s := range nt.senders {
		err := s.Send(n)
		if err == nil {
			return
		}
		common.LogDebug("Notification sender %T failed: %v", s, err)
	}
	common.LogWarn("Could not show notification %q", n.Title)
}

// Connected shows a notification when the VPN connects.
func (nt *Notifier) Connected(destination string) {
	msg := "Connected"
	if destination != "" {
		msg = "Connected to " + destination
	}
	nt.Show(Notification{
		Title:   "VPN Connected",
		Message: msg,
		Kind:    KindSuccess,
		Icon:    "network-vpn",
	})
}

// Disconnected shows a notification when the VPN disconnects.
func (nt *Notifier) Disconnected() {
	nt.Show(Notification{
		Title:   "VPN Disconnected",
		Message: "The VPN connection was closed",
		Kind:    KindInfo,
		Icon:    "network-vpn-disconnected",
	})
}

// Error shows a notification for a failed operation.
func (nt *Notifier) Error(title, message string) {
	nt.Show(Notification{
		Title:   title,
		Message: message,
		Kind:    KindError,
	})
}
