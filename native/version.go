// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import "fmt"

// LibraryVersion is the version of the linked native library.
type LibraryVersion struct {
	Major, Minor, Patch int
	Full                string
}

func (v LibraryVersion) String() string {
	if v.Full != "" {
		return v.Full
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Version reports the version of the linked native library.
func Version() LibraryVersion {
	var (
		s                   *C.char
		major, minor, patch C.int
	)
	C.igraph_version(&s, &major, &minor, &patch)
	return LibraryVersion{
		Major: int(major),
		Minor: int(minor),
		Patch: int(patch),
		Full:  C.GoString(s),
	}
}
