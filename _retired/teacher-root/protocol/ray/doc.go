// Package ray finalizes linear chains through single-threaded consensus.
//
// After focus accumulates β consecutive successes, Ray provides the final
// "yes/no" decision for the linear case. It's a single beam of light that
// marks a definitive state transition—bright, decisive, observable.
// This handles linear consensus finality.
package ray
