// Package terminal provides the screen session for tinydaw.
//
// Features:
//   - Alternate screen with raw input and a hidden cursor (tcell-backed)
//   - Cell-addressed text drawing through a fixed color palette
//   - Blocking key reads decoded to the keys tinydaw binds
//   - Idempotent teardown reachable from deferred and signal paths
//
// A Session is created once per run and must be closed on every exit
// path so the terminal is restored.
package terminal
