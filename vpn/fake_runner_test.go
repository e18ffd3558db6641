package vpn

import (
	"context"
	"strings"
	"sync"
	"time"
)

// behavior scripts one nordvpn invocation.
type behavior func(ctx context.Context) (stdout, stderr string, code int, err error)

// fakeRunner is a scripted CommandRunner. Behaviors are keyed by the joined
// argument list and consumed in order; unscripted calls succeed silently.
type fakeRunner struct {
	mu        sync.Mutex
	behaviors map[string][]behavior
	calls     [][]string
}

var _ CommandRunner = (*fakeRunner)(nil)

func newFakeRunner() *fakeRunner {
	return &fakeRunner{behaviors: make(map[string][]behavior)}
}

func (f *fakeRunner) on(args string, b behavior) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.behaviors[args] = append(f.behaviors[args], b)
	return f
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	key := strings.Join(args, " ")

	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	var b behavior
	if queue := f.behaviors[key]; len(queue) > 0 {
		b = queue[0]
		f.behaviors[key] = queue[1:]
	}
	f.mu.Unlock()

	if b == nil {
		return nil, nil, 0, nil
	}
	stdout, stderr, code, err := b(ctx)
	return []byte(stdout), []byte(stderr), code, err
}

func (f *fakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

func succeed(stdout string) behavior {
	return func(context.Context) (string, string, int, error) {
		return stdout, "", 0, nil
	}
}

func fail(code int, stdout, stderr string) behavior {
	return func(context.Context) (string, string, int, error) {
		return stdout, stderr, code, nil
	}
}

// blocked waits for release, or for cancellation like a killed process.
func blocked(release <-chan struct{}, then behavior) behavior {
	return func(ctx context.Context) (string, string, int, error) {
		select {
		case <-release:
			return then(ctx)
		case <-ctx.Done():
			return "", "", -1, ctx.Err()
		}
	}
}

// stubborn ignores cancellation and exits successfully once released.
func stubborn(release <-chan struct{}, stdout string) behavior {
	return func(context.Context) (string, string, int, error) {
		<-release
		return stdout, "", 0, nil
	}
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
