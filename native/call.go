// SPDX-License-Identifier: MIT

package native

/*
#cgo pkg-config: igraph
#cgo linux LDFLAGS: -ldl
#include "bridge.h"
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/igraphgo/status"
)

// mu serialises every use of the native library. The library keeps
// process-wide state (error handlers, the finally stack, the default RNG,
// the attribute table) that is not safe for concurrent calls.
var mu sync.Mutex

// pending is polled by the interruption handler. It is cleared whenever a
// call starts, so an interrupt only reaches the call in progress.
var pending atomic.Bool

// exclusive runs fn on a locked OS thread while holding mu. Functions
// documented as "caller holds the lock" must only be used inside fn.
func exclusive(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	mu.Lock()
	defer mu.Unlock()
	if err := ensureInstalled(); err != nil {
		return err
	}
	pending.Store(false)
	return fn()
}

// run is exclusive with cancellation: once ctx is done the interruption
// handler reports a pending interrupt, the native library unwinds and the
// returned error wraps both status.ErrInterrupted and ctx.Err().
func run(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", status.ErrInterrupted, err)
	}
	return exclusive(func() error {
		fired := make(chan struct{})
		stop := context.AfterFunc(ctx, func() {
			pending.Store(true)
			close(fired)
		})
		err := fn()
		if !stop() {
			<-fired
		}
		pending.Store(false)
		if errors.Is(err, status.ErrInterrupted) && ctx.Err() != nil {
			return fmt.Errorf("%w: %w", err, ctx.Err())
		}
		return err
	})
}

// check translates the return code of a native call. Caller holds the lock.
func check(code C.igraph_error_t) error {
	if code == C.IGRAPH_SUCCESS {
		return nil
	}
	C.IGRAPH_FINALLY_FREE()
	c := status.Code(code)
	if c == status.Interrupted {
		lastError.Clear()
		return status.ErrInterrupted
	}
	return lastError.Check(c)
}

func cbool(b bool) C.igraph_bool_t {
	return C.igraph_bool_t(b)
}

func cint(n int64) C.igraph_integer_t {
	return C.igraph_integer_t(n)
}
