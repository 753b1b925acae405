package platform

import "time"

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider. On systems
// without a usable probe the provider reports session.ErrIdleUnsupported,
// which makes the engine disable idle auto-pause.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}
