// SPDX-License-Identifier: MIT

package native

/*
#include <dlfcn.h>
#include <stdlib.h>

static int probe_library(const char *name) {
    void *h = dlopen(name, RTLD_LAZY | RTLD_LOCAL);
    if (h == NULL) {
        return 0;
    }
    dlclose(h);
    return 1;
}
*/
import "C"

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"unsafe"

	"github.com/katalvlaran/igraphgo/status"
)

// LibraryEnv overrides the shared library names tried by Locate.
const LibraryEnv = "IGRAPH_LIBRARY"

// LibraryNames returns the shared library names tried by Locate on goos:
// the LibraryEnv override if set, then the platform names.
func LibraryNames(goos string) []string {
	var names []string
	if v := os.Getenv(LibraryEnv); v != "" {
		names = append(names, v)
	}
	switch goos {
	case "darwin":
		names = append(names, "libigraph.dylib", "libigraph.3.dylib")
	case "windows":
		names = append(names, "igraph.dll", "libigraph.dll")
	default:
		names = append(names, "libigraph.so", "libigraph.so.3")
	}
	return names
}

// Locate finds a loadable copy of the native library at run time and
// returns its name. The binding itself is linked at build time; Locate
// serves diagnostics and tools that check an installation.
func Locate() (string, error) {
	names := LibraryNames(runtime.GOOS)
	for _, name := range names {
		cname := C.CString(name)
		ok := C.probe_library(cname) != 0
		C.free(unsafe.Pointer(cname))
		if ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: native library not found (tried %s)", status.ErrRuntime, strings.Join(names, ", "))
}
