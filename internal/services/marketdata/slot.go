// Package marketdata keeps live FX rates and spot prices fresh in the background.
package marketdata

import (
	"sync"
	"time"
)

// Slot named piece of shared state replaced as a whole. Stored values must not be
// mutated after Replace, readers get the stored value as is.
type Slot[T any] struct {
	name string

	mu      sync.RWMutex
	value   T
	seq     uint64
	updated time.Time
}

// NewSlot creates a slot holding initial.
func NewSlot[T any](name string, initial T) *Slot[T] {
	return &Slot[T]{name: name, value: initial}
}

// Name returns the slot name.
func (s *Slot[T]) Name() string {
	return s.name
}

// Load returns the current value.
func (s *Slot[T]) Load() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Updated returns the time of the last successful replace, zero if never replaced.
func (s *Slot[T]) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

// Replace stores v produced by run seq. Results of runs older than the stored one
// are dropped so a slow fetch never overwrites a newer value.
func (s *Slot[T]) Replace(seq uint64, v T, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.seq {
		return false
	}
	s.value = v
	s.seq = seq
	s.updated = at
	return true
}
