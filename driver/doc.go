// Package driver wires configuration loading and progress logging
// around the sat package's counter-example-guided search, the way a
// command-line entry point would invoke it end to end.
package driver

import "errors"

// ErrNoAutomata indicates Run was called without the parsed formula
// tree, its builder, or the raw initial-configuration acceptor and
// system transducer the C5/C6/C3 composition pipeline requires.
var ErrNoAutomata = errors.New("driver: formula tree, builder, and raw initial/system automata are required")
