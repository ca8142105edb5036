// SPDX-License-Identifier: MIT

package status

import (
	"fmt"
	"sync"
)

// State holds the last error reported by the native library during a call.
//
// It is written by the error handler (Store) and by callback trampolines
// (SetCause), and read once after a native call returns a nonzero code
// (Check), which also clears it. The zero value is ready to use.
type State struct {
	mu    sync.Mutex
	rec   *Record
	cause error
}

// Store records a native error report.
//
// The first report of a failing call wins: the innermost failure carries the
// most precise location. A later report only replaces an earlier one that had
// no message, which is how the native library propagates codes upwards.
func (s *State) Store(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil || (s.rec.Message == "" && rec.Message != "") {
		r := rec
		s.rec = &r
	}
}

// SetCause remembers the Go error that made a callback fail. Only the first
// cause of a call is kept.
func (s *State) SetCause(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cause == nil {
		s.cause = err
	}
}

// Peek returns the stored record without clearing it.
func (s *State) Peek() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return Record{}, false
	}
	return *s.rec, true
}

// Empty reports whether neither a record nor a cause is stored.
func (s *State) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec == nil && s.cause == nil
}

// Clear drops any stored record and cause.
func (s *State) Clear() {
	s.mu.Lock()
	s.rec, s.cause = nil, nil
	s.mu.Unlock()
}

func (s *State) take() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, cause := s.rec, s.cause
	s.rec, s.cause = nil, nil
	return rec, cause
}

// Check translates the return code of a native call into a Go error and
// clears the state.
//
// Success yields nil and leaves the state untouched. A nonzero code with a
// stored record yields an *Error; without a record it yields an ErrRuntime
// error that still wraps the callback cause, if any.
func (s *State) Check(code Code) error {
	if code == Success {
		return nil
	}
	rec, cause := s.take()
	if rec == nil {
		if cause != nil {
			return fmt.Errorf("%w: native call failed with %s: %w", ErrRuntime, code.Symbol(), cause)
		}
		return fmt.Errorf("%w: native call failed with %s (%s) and left no error record", ErrRuntime, code.Symbol(), code)
	}
	if rec.Code == Success {
		rec.Code = code
	}
	return NewError(*rec, cause)
}
