// Package parallel provides the fork-join combinators the generator fans
// trial solves out with. Each trial owns a private board clone, so no
// synchronization beyond join bookkeeping is needed.
package parallel

// AnySucceeds runs every trial concurrently and reports whether any of them
// returned true. It short-circuits: the first success returns immediately
// and the remaining trials are left to finish on their own and be discarded,
// not cancelled mid-flight.
func AnySucceeds(trials []func() bool) bool {
	switch len(trials) {
	case 0:
		return false
	case 1:
		return trials[0]()
	}

	// Buffered so abandoned trials can still deposit their result and exit.
	results := make(chan bool, len(trials))
	for _, trial := range trials {
		go func(run func() bool) {
			results <- run()
		}(trial)
	}

	for range trials {
		if <-results {
			return true
		}
	}
	return false
}

// AllFail is the complementary combinator: true when every trial returns
// false. A single success short-circuits it to false.
func AllFail(trials []func() bool) bool {
	return !AnySucceeds(trials)
}
