// Package chflow holds channel helpers that respect context cancellation.
package chflow

import "context"

// Receive waits for a value on ch. It returns false when ctx is done first
// or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}
