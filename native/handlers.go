// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/igraphgo/status"
)

// lastError is the last-error record written by the native error handler
// and by callback trampolines, and consumed by check.
var lastError status.State

// LastError returns the error record stored by the native error handler and
// not yet consumed. It is empty between calls.
func LastError() (status.Record, bool) {
	return lastError.Peek()
}

// Handlers are the Go-side receivers of native warnings and fatal errors.
// A nil field selects the default behaviour.
type Handlers struct {
	// Warning receives non-fatal diagnostics. Default: logged at warn level
	// with file and line fields.
	Warning func(message, file string, line int)
	// Fatal is called right before the native library aborts the process.
	// Default: "Fatal error at file:line: message" on stderr.
	Fatal func(message, file string, line int)
}

var (
	handlersMu sync.RWMutex
	handlers   Handlers
	fatalOut   io.Writer = os.Stderr
)

// InstallHandlers makes h the active handler set and returns the previous
// one, so a second install can be undone by installing its result.
func InstallHandlers(h Handlers) Handlers {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	prev := handlers
	handlers = h
	return prev
}

func currentHandlers() Handlers {
	handlersMu.RLock()
	defer handlersMu.RUnlock()
	return handlers
}

func onError(message, file string, line int, code status.Code) {
	lastError.Store(status.Record{Message: message, File: file, Line: line, Code: code})
}

func onWarning(message, file string, line int) {
	if h := currentHandlers().Warning; h != nil {
		h(message, file, line)
		return
	}
	log.WithFields(logrus.Fields{"file": file, "line": line}).Warn(message)
}

func onFatal(message, file string, line int) {
	if h := currentHandlers().Fatal; h != nil {
		h(message, file, line)
		return
	}
	fmt.Fprintf(fatalOut, "Fatal error at %s:%d: %s\n", file, line, message)
}

// HandleInterrupts turns SIGINT into an interrupt of the running native
// call until stop is called. Without it, only context cancellation
// interrupts native calls.
func HandleInterrupts() (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, os.Interrupt)
	go func() {
		for {
			select {
			case <-ch:
				log.Debug("interrupt requested")
				pending.Store(true)
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}

// installNativeHandlers registers the C stubs with the native library.
// Caller holds the lock.
func installNativeHandlers() {
	C.bridge_install_handlers()
}

// restoreNativeHandlers puts back the handlers found at install time.
// Caller holds the lock.
func restoreNativeHandlers() {
	C.bridge_restore_handlers()
}
