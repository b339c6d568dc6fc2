// Package reduce implements the two graph-reduction strategies that
// collapse a multi-path network between a communication pair into direct
// representative links: purification-based reduction, which numerically
// fuses multiple entanglement supplies into one higher-fidelity link, and
// swapping-based reduction, which relays each supply end-to-end and keeps
// them as independent parallel links.
package reduce

import (
	"errors"

	"github.com/qnetsim/qnetsim/pkg/network"
)

// ErrInvalidThreshold is returned when a reduction threshold is negative.
// Zero means unlimited.
var ErrInvalidThreshold = errors.New("reduction threshold must be positive")

// Outcome is the result of a reduction attempt. A disconnected pair is an
// expected, non-exceptional result: Connected is false and Network is nil,
// and the Monte Carlo scorer assigns the floor score instead of failing.
type Outcome struct {
	Network   *network.Snapshot
	Connected bool

	// PathsConsumed is how many paths the reduction extracted from the
	// working copy. Zero for a NotConnected outcome.
	PathsConsumed int
}

// NotConnected is the sentinel outcome for a pair with no connecting path.
func NotConnected() Outcome {
	return Outcome{Connected: false}
}

// thresholdExceeded implements the reference loop-cap semantics: the loop
// breaks once the number of already-consumed paths EXCEEDS the threshold,
// so a threshold of n admits up to n+1 paths. Callers depend on this exact
// behavior; do not tighten it to >=.
func thresholdExceeded(consumed, threshold int) bool {
	return threshold > 0 && consumed > threshold
}
