/*
Package resilience provides a circuit breaker for outbound calls.

# Overview

The breaker prevents hammering an endpoint that is already failing: after
enough failures it opens and refuses calls outright, then periodically
lets probe calls through to detect recovery.

# Usage

	breaker := resilience.New("ain-service", resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	err := breaker.Do(func() error {
		return client.Call()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                      [failure]
	                                           v
	                                         Open
*/
package resilience
