package vpn

import "github.com/yllada/nordvpn-tray/common"

// Client runs nordvpn commands with one slot per operation so a repeated
// request does not start a second process. Quick connect, connect and
// disconnect share the connecting slot.
type Client struct {
	runner *Runner

	status     *slot
	account    *slot
	settings   *slot
	countries  *slot
	cities     *slot
	connecting *slot
}

// NewClient creates a client over runner.
func NewClient(runner *Runner) *Client {
	return &Client{
		runner:     runner,
		status:     newSlot("status", skipWhileBusy),
		account:    newSlot("account", skipWhileBusy),
		settings:   newSlot("settings", skipWhileBusy),
		countries:  newSlot("countries", skipWhileBusy),
		cities:     newSlot("cities", restartWhileBusy),
		connecting: newSlot("connecting", skipWhileBusy),
	}
}

// Runner returns the underlying runner.
func (c *Client) Runner() *Runner {
	return c.runner
}

// guard wraps callbacks so the slot is released before they run.
func guard[T any](release func(), onSuccess func(T), onError func(error)) (func(T), func(error)) {
	return func(v T) {
			release()
			if onSuccess != nil {
				onSuccess(v)
			}
		}, func(err error) {
			release()
			if onError != nil {
				onError(err)
			}
		}
}

func discard(f func()) func(Empty) {
	return func(Empty) {
		if f != nil {
			f()
		}
	}
}

// Status loads the connection status. It returns false if a status request
// is already pending.
func (c *Client) Status(onSuccess func(Status), onError func(error)) bool {
	return c.status.run(func(release func()) closer {
		ok, fail := guard(release, onSuccess, onError)
		return c.runner.Status(ok, fail)
	})
}

// Account loads the account information.
func (c *Client) Account(onSuccess func(Account), onError func(error)) bool {
	return c.account.run(func(release func()) closer {
		ok, fail := guard(release, onSuccess, onError)
		return c.runner.Account(ok, fail)
	})
}

// Settings loads the nordvpn settings.
func (c *Client) Settings(onSuccess func(Settings), onError func(error)) bool {
	return c.settings.run(func(release func()) closer {
		ok, fail := guard(release, onSuccess, onError)
		return c.runner.Settings(ok, fail)
	})
}

// Countries loads the country list.
func (c *Client) Countries(onSuccess func([]Country), onError func(error)) bool {
	return c.countries.run(func(release func()) closer {
		ok, fail := guard(release, onSuccess, onError)
		return c.runner.Countries(ok, fail)
	})
}

// Cities loads the cities of country. A pending cities request is
// cancelled so only the latest country delivers. It always returns true.
func (c *Client) Cities(country string, onSuccess func([]string), onError func(error)) bool {
	return c.cities.run(func(release func()) closer {
		ok, fail := guard(release, onSuccess, onError)
		return c.runner.Cities(country, ok, fail)
	})
}

// CancelCities drops a pending cities request.
func (c *Client) CancelCities() {
	c.cities.cancel()
}

// QuickConnect connects to the fastest server, in country when given.
func (c *Client) QuickConnect(country string, onSuccess func(), onError func(error)) bool {
	return c.connecting.run(func(release func()) closer {
		ok, fail := guard(release, discard(onSuccess), onError)
		return c.runner.QuickConnect(country, ok, fail)
	})
}

// Connect connects to target. Validation errors are returned synchronously
// and leave the slot free.
func (c *Client) Connect(target Target, onSuccess func(), onError func(error)) (bool, error) {
	if _, err := target.Args(); err != nil {
		return false, err
	}
	started := c.connecting.run(func(release func()) closer {
		ok, fail := guard(release, discard(onSuccess), onError)
		inv, _ := c.runner.Connect(target, ok, fail)
		return inv
	})
	return started, nil
}

// Disconnect disconnects the tunnel.
func (c *Client) Disconnect(onSuccess func(), onError func(error)) bool {
	return c.connecting.run(func(release func()) closer {
		ok, fail := guard(release, discard(onSuccess), onError)
		return c.runner.Disconnect(ok, fail)
	})
}

// Connecting reports whether a connect or disconnect is pending.
func (c *Client) Connecting() bool {
	return c.connecting.Busy()
}

// Close cancels every pending request. No callback fires afterwards.
func (c *Client) Close() {
	for _, s := range []*slot{c.status, c.account, c.settings, c.countries, c.cities, c.connecting} {
		s.cancel()
	}
	common.LogDebug("nordvpn client closed")
}
