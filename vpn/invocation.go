package vpn

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/yllada/nordvpn-tray/common"
)

// Empty is the result of commands without a payload (connect, disconnect).
type Empty struct{}

// ProcessError is a nordvpn invocation that could not start or exited nonzero.
// Message is what the CLI printed on stderr, or stdout when stderr was empty.
type ProcessError struct {
	Args     []string
	ExitCode int
	Message  string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("nordvpn %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
}

// Is reports ErrProcessFailed for every process error.
func (e *ProcessError) Is(target error) bool {
	return target == common.ErrProcessFailed
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Invocation is a single in-flight nordvpn process. Exactly one of its
// callbacks fires, once, unless it is closed first.
type Invocation[T any] struct {
	ID   string
	Args []string

	cancel   context.CancelFunc
	dispatch Dispatcher
	done     chan struct{}

	mu        sync.Mutex
	onSuccess func(T)
	onError   func(error)
	finished  bool
	closed    bool
	result    T
	err       error
}

// invoke starts args on r and returns without waiting. parse may be nil for
// commands whose output is ignored.
func invoke[T any](r *Runner, args []string, parse func(string) T, onSuccess func(T), onError func(error)) *Invocation[T] {
	ctx, cancel := context.WithCancel(context.Background())
	inv := &Invocation[T]{
		ID:        uuid.NewString(),
		Args:      slices.Clone(args),
		cancel:    cancel,
		dispatch:  r.dispatch,
		done:      make(chan struct{}),
		onSuccess: onSuccess,
		onError:   onError,
	}

	go inv.run(ctx, r, parse)
	return inv
}

func (inv *Invocation[T]) run(ctx context.Context, r *Runner, parse func(string) T) {
	defer inv.cancel()

	common.LogDebug("Running command %s %s (%s)", r.binary, strings.Join(inv.Args, " "), inv.ID)
	stdout, stderr, code, err := r.commands.Run(ctx, r.binary, inv.Args...)

	var result T
	switch {
	case ctx.Err() != nil:
		err = common.ErrCancelled
	case err != nil:
		err = &ProcessError{Args: inv.Args, ExitCode: code, Message: err.Error(), Err: err}
	case code != 0:
		msg := decode(stderr)
		if msg == "" {
			msg = decode(stdout)
		}
		err = &ProcessError{Args: inv.Args, ExitCode: code, Message: msg}
	default:
		if parse != nil {
			result = parse(strings.ToValidUTF8(string(stdout), "\uFFFD"))
		}
	}

	if err != nil && err != common.ErrCancelled {
		common.LogWarn("Command %s %s failed (%s): %v", r.binary, strings.Join(inv.Args, " "), inv.ID, err)
	}
	inv.finish(result, err)
}

func decode(b []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(b), "\uFFFD"))
}

func (inv *Invocation[T]) finish(result T, err error) {
	inv.mu.Lock()
	inv.finished = true
	closed := inv.closed
	if !closed {
		inv.result, inv.err = result, err
	}
	close(inv.done)
	inv.mu.Unlock()

	if closed {
		return
	}
	inv.dispatch(inv.deliver)
}

// deliver runs on the dispatcher. Callbacks are taken under the lock so a
// Close that ran in between wins.
func (inv *Invocation[T]) deliver() {
	inv.mu.Lock()
	onSuccess, onError := inv.onSuccess, inv.onError
	inv.onSuccess, inv.onError = nil, nil
	result, err := inv.result, inv.err
	inv.mu.Unlock()

	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onSuccess != nil {
		onSuccess(result)
	}
}

// Done is closed once the process has exited and the result is known.
func (inv *Invocation[T]) Done() <-chan struct{} {
	return inv.done
}

// Wait blocks until the process exits or ctx ends. It returns
// common.ErrCancelled for a closed invocation.
func (inv *Invocation[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-inv.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.result, inv.err
}

// Close detaches the callbacks and kills the process if it is still running.
// It is safe to call more than once and from within a callback.
func (inv *Invocation[T]) Close() {
	inv.mu.Lock()
	if !inv.closed {
		inv.closed = true
		inv.onSuccess, inv.onError = nil, nil
		if !inv.finished {
			var zero T
			inv.result, inv.err = zero, common.ErrCancelled
		}
	}
	inv.mu.Unlock()

	inv.cancel()
}
