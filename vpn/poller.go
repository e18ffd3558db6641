package vpn

import (
	"sync"
	"time"

	"github.com/yllada/nordvpn-tray/common"
)

// StatusPoller refreshes the connection status on a fixed interval.
type StatusPoller struct {
	mu        sync.RWMutex
	client    *Client
	interval  time.Duration
	running   bool
	stopChan  chan struct{}
	resetChan chan time.Duration
	onRefresh func()
	onStatus  func(Status)
	onError   func(error)
}

// NewStatusPoller creates a poller for client. A non-positive interval
// falls back to common.StatusInterval.
func NewStatusPoller(client *Client, interval time.Duration) *StatusPoller {
	if interval <= 0 {
		interval = common.StatusInterval
	}
	return &StatusPoller{
		client:    client,
		interval:  interval,
		stopChan:  make(chan struct{}),
		resetChan: make(chan time.Duration, 1),
	}
}

// SetOnRefresh sets a callback invoked whenever a status request is started.
// It runs on the goroutine that started the request: the ticker goroutine
// or the caller of Start or Refresh.
func (p *StatusPoller) SetOnRefresh(callback func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRefresh = callback
}

// SetOnStatus sets the callback receiving each status.
func (p *StatusPoller) SetOnStatus(callback func(Status)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStatus = callback
}

// SetOnError sets the callback receiving failed status requests.
func (p *StatusPoller) SetOnError(callback func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = callback
}

// Start refreshes immediately and then on every tick.
func (p *StatusPoller) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopChan = make(chan struct{})
	interval := p.interval
	p.mu.Unlock()

	common.LogInfo("Status poller started (interval: %v)", interval)

	p.Refresh()
	go p.runLoop(interval)
}

// Stop stops the polling loop. A request already started still delivers.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	common.LogInfo("Status poller stopped")
}

// IsRunning returns whether the poller is currently running.
func (p *StatusPoller) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Interval returns the current polling interval.
func (p *StatusPoller) Interval() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.interval
}

// UpdateInterval changes the polling interval, restarting the ticker of a
// running poller.
func (p *StatusPoller) UpdateInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.mu.Lock()
	p.interval = interval
	running := p.running
	p.mu.Unlock()

	if !running {
		return
	}
	select {
	case p.resetChan <- interval:
	default:
	}
}

// Refresh requests the status now. It returns false when a status request
// is already pending.
func (p *StatusPoller) Refresh() bool {
	p.mu.RLock()
	onRefresh, onStatus, onError := p.onRefresh, p.onStatus, p.onError
	p.mu.RUnlock()

	started := p.client.Status(
		func(s Status) {
			if onStatus != nil {
				onStatus(s)
			}
		},
		func(err error) {
			if onError != nil {
				onError(err)
			}
		},
	)
	if started && onRefresh != nil {
		onRefresh()
	}
	return started
}

func (p *StatusPoller) runLoop(interval time.Duration) {
	p.mu.RLock()
	stop := p.stopChan
	p.mu.RUnlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case d := <-p.resetChan:
			ticker.Reset(d)
			common.LogDebug("Status poller interval changed to %v", d)
		case <-ticker.C:
			p.Refresh()
		}
	}
}
