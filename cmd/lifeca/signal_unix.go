//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals end interactive frontends. On Unix systems this includes
// both SIGINT and SIGTERM.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
