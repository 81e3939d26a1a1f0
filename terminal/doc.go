// Package terminal wraps a tcell screen behind a small cell-flush interface.
//
// Features:
//   - True color cell output from a row-major Cell slice
//   - Key, mouse motion and resize events normalized into Event
//   - Synthetic event injection for wakeups and tests
//   - Idempotent teardown, usable from panic recovery
//
// Any tcell.Screen can back a Terminal, including tcell.SimulationScreen in tests.
package terminal
