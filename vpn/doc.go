// Package vpn drives the nordvpn command-line client.
//
// Every operation spawns the nordvpn binary, waits for it off the caller's
// goroutine and scrapes its human-readable output into a small record:
//
//   - Runner: starts one process per call and returns an Invocation
//   - Invocation: a one-shot future delivering exactly one callback
//   - ParseFields / ParseCSVLine: line-oriented label and list extraction
//   - Client: one slot per operation so repeated clicks do not pile up
//   - StatusPoller: periodic status refresh
//
// # Callbacks
//
// Callbacks run through the Runner's Dispatcher. The GUI installs a
// dispatcher that posts onto the GTK main loop; the default runs the
// callback on the goroutine that reaped the process. Closing an
// Invocation before its callback has run guarantees the callback never
// runs, even when the process already exited.
package vpn
