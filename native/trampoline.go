// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/igraphgo/status"
)

// trampoline runs the Go side of a native callback. fn's error, or a
// recovered panic, never crosses into C: it is kept as the cause of the
// failing call, reported through igraph_error so the native library
// unwinds, and its mapped code is returned for the callback to propagate.
func trampoline(slot string, fn func() error) (code C.int) {
	defer func() {
		if r := recover(); r != nil {
			code = raise(slot, fmt.Errorf("%w: panic: %v", status.ErrRuntime, r))
		}
	}()
	if err := fn(); err != nil {
		return raise(slot, err)
	}
	return C.IGRAPH_SUCCESS
}

func raise(slot string, err error) C.int {
	lastError.SetCause(err)
	code := status.CodeOf(err)
	if code == status.Success {
		code = status.Failure
	}
	log.WithFields(logrus.Fields{"slot": slot, "code": code.Symbol()}).Debug(err)
	reason := C.CString(slot + ": " + err.Error())
	defer C.free(unsafe.Pointer(reason))
	return C.int(C.bridge_raise(reason, C.igraph_error_t(code)))
}
