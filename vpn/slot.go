package vpn

import (
	"sync"

	"github.com/yllada/nordvpn-tray/common"
)

// slotPolicy decides what happens when a slot is started while busy.
type slotPolicy int

const (
	// skipWhileBusy ignores the new request.
	skipWhileBusy slotPolicy = iota
	// restartWhileBusy closes the pending invocation and starts over.
	restartWhileBusy
)

type closer interface {
	Close()
}

// slot holds at most one pending invocation for one logical operation.
// gen tells a stale completion apart from the current one.
type slot struct {
	name   string
	policy slotPolicy

	mu      sync.Mutex
	gen     uint64
	busy    bool
	current closer
}

func newSlot(name string, policy slotPolicy) *slot {
	return &slot{name: name, policy: policy}
}

// run reserves the slot and calls start. The release func passed to start
// must be called when the invocation completes, before user callbacks run.
func (s *slot) run(start func(release func()) closer) bool {
	s.mu.Lock()
	var prev closer
	if s.busy {
		if s.policy == skipWhileBusy {
			s.mu.Unlock()
			common.LogDebug("Ignoring %s request: already running", s.name)
			return false
		}
		prev = s.current
	}
	s.gen++
	gen := s.gen
	s.busy = true
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		common.LogDebug("Restarting %s request", s.name)
		prev.Close()
	}

	inv := start(func() { s.release(gen) })

	s.mu.Lock()
	if s.gen == gen && s.busy {
		s.current = inv
	}
	s.mu.Unlock()
	return true
}

func (s *slot) release(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.busy = false
	s.current = nil
}

// Busy reports whether an invocation is pending.
func (s *slot) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// cancel closes the pending invocation, if any, and frees the slot.
func (s *slot) cancel() {
	s.mu.Lock()
	prev := s.current
	s.gen++
	s.busy = false
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
}
