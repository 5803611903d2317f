//go:build windows

package main

import "os"

// shutdownSignals end interactive frontends. Windows only delivers Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}
