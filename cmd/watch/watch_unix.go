//go:build !windows

package watch

import (
	"os"
	"syscall"
)

// stopSignals end a watch. SIGHUP covers a closed terminal.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
