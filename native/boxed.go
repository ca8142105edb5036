// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Boxed owns one native value of type T allocated in C memory, so the
// native library may keep pointers to it across calls.
//
// When initialized, Close runs the destructor exactly once; Close is
// idempotent and also frees the C allocation. A finalizer closes boxes that
// were never closed, under the native lock, and logs the leak at debug level.
type Boxed[T any] struct {
	ptr         *T
	destroy     func(*T)
	initialized bool
	pinner      runtime.Pinner
	what        string
}

func alloc[T any]() *T {
	var zero T
	return (*T)(C.calloc(1, C.size_t(unsafe.Sizeof(zero))))
}

func track[T any](b *Boxed[T]) *Boxed[T] {
	runtime.SetFinalizer(b, closeLeaked[T])
	return b
}

// closeLeaked is the finalizer of every box; it takes the native lock.
func closeLeaked[T any](b *Boxed[T]) {
	if b.ptr == nil {
		return
	}
	log.WithField("type", b.what).Debug("closing leaked native value")
	_ = exclusive(func() error {
		b.Close()
		return nil
	})
}

// uninit allocates a zeroed value to be passed as an out-parameter to a
// native initializer; see MarkInitialized.
func uninit[T any](destroy func(*T)) *Boxed[T] {
	p := alloc[T]()
	return track(&Boxed[T]{ptr: p, destroy: destroy, what: fmt.Sprintf("%T", p)})
}

// newBoxed allocates a value and constructs it with init. On failure the
// value was never constructed: the destructor is not run and the translated
// native error is returned. Caller holds the lock.
func newBoxed[T any](init func(*T) C.igraph_error_t, destroy func(*T)) (*Boxed[T], error) {
	b := uninit(destroy)
	if err := check(init(b.ptr)); err != nil {
		b.Close()
		return nil, err
	}
	b.initialized = true
	return b, nil
}

// Ptr borrows the value for one native call.
func (b *Boxed[T]) Ptr() *T { return b.ptr }

// Value returns a copy of the value for pass-by-value arguments.
func (b *Boxed[T]) Value() T { return *b.ptr }

// Initialized reports whether Close will run the destructor.
func (b *Boxed[T]) Initialized() bool { return b.initialized }

// MarkInitialized records that a native initializer filled the value.
func (b *Boxed[T]) MarkInitialized() { b.initialized = true }

// Release gives up ownership of the native value: Close will free the C
// allocation without running the destructor.
func (b *Boxed[T]) Release() { b.initialized = false }

// Close destroys the value if initialized and frees the allocation.
func (b *Boxed[T]) Close() {
	if b == nil || b.ptr == nil {
		return
	}
	if b.initialized && b.destroy != nil {
		b.destroy(b.ptr)
	}
	b.initialized = false
	C.free(unsafe.Pointer(b.ptr))
	b.ptr = nil
	b.pinner.Unpin()
	runtime.SetFinalizer(b, nil)
}
