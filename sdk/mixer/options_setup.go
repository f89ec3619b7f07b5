package mixer

import (
	"fmt"
	"time"

	"github.com/FPtrevi/midicontrol/internal/logger"
	"github.com/FPtrevi/midicontrol/sdk/contracts"
)

// Reconnection defaults: 1s base doubling to a 30s cap, five attempts per
// outage.
const (
	defaultConnectTimeout = 5 * time.Second
	defaultBaseDelay      = time.Second
	defaultMultiplier     = 2.0
	defaultMaxDelay       = 30 * time.Second
	defaultMaxAttempts    = 5
	defaultQueueSize      = 64
)

// applyDefaultOptions fills in defaults for options not explicitly
// provided and rejects options no session can run with.
func applyDefaultOptions(opts ...contracts.Option) (contracts.SessionOptions, error) {
	o := contracts.SessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.Profile == nil {
		return o, fmt.Errorf("%w: no mixer profile selected", contracts.ErrConfigurationInvalid)
	}
	if o.Logger == nil {
		o.Logger = logger.New(false)
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = defaultConnectTimeout
	}
	if o.Retry.BaseDelay <= 0 {
		o.Retry.BaseDelay = defaultBaseDelay
	}
	if o.Retry.Multiplier <= 1 {
		o.Retry.Multiplier = defaultMultiplier
	}
	if o.Retry.MaxDelay <= 0 {
		o.Retry.MaxDelay = defaultMaxDelay
	}
	if o.Retry.MaxAttempts <= 0 {
		o.Retry.MaxAttempts = defaultMaxAttempts
	}
	if o.QueueSize <= 0 {
		o.QueueSize = defaultQueueSize
	}
	return o, nil
}
