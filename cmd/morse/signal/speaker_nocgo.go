//go:build !((linux && cgo) || windows || darwin)

package signal

// AudioAvailable indicates whether speaker playback is supported in this build.
// The speaker needs cgo on Linux; the system beep is used instead.
const AudioAvailable = false

// DefaultEmitter returns the system beep.
func DefaultEmitter() Emitter {
	return BellEmitter{}
}
