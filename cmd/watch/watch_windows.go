//go:build windows

package watch

import "os"

// Windows only delivers Ctrl-C to console programs.
var stopSignals = []os.Signal{os.Interrupt}
