package utils

import "time"

// Retry runs fn up to attempts times with exponential backoff between
// tries (base, 2*base, 4*base, ...). It returns nil on the first success
// and the last error otherwise. Termination is explicit: no recursion,
// no unbounded loop.
func Retry(attempts int, base time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	delay := base
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return err
}
