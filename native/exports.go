// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"github.com/katalvlaran/igraphgo/status"
)

// Entry points called from the C stubs in bridge.c. Every attribute slot
// runs through trampoline; the handlers never fail.

//export goErrorHandler
func goErrorHandler(reason, file *C.char, line C.int, code C.int) {
	onError(C.GoString(reason), C.GoString(file), int(line), status.Code(code))
}

//export goWarningHandler
func goWarningHandler(reason, file *C.char, line C.int) {
	onWarning(C.GoString(reason), C.GoString(file), int(line))
}

//export goFatalHandler
func goFatalHandler(reason, file *C.char, line C.int) {
	onFatal(C.GoString(reason), C.GoString(file), int(line))
}

//export goInterruptPending
func goInterruptPending() C.int {
	if pending.Swap(false) {
		return 1
	}
	return 0
}

//export goRNGGet
func goRNGGet() C.uint64_t {
	return C.uint64_t(rngDraw())
}

//export goAttrInit
func goAttrInit(g *C.igraph_t, records *C.igraph_vector_ptr_t) C.int {
	return trampoline("init", func() error { return attrInit(g, records) })
}

//export goAttrDestroy
func goAttrDestroy(g *C.igraph_t) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("slot", "destroy").Errorf("recovered: %v", r)
		}
	}()
	detachStorage(g)
}

//export goAttrCopy
func goAttrCopy(to, from *C.igraph_t, ga, va, ea C.int) C.int {
	return trampoline("copy", func() error { return attrCopy(to, from, ga != 0, va != 0, ea != 0) })
}

//export goAttrAdd
func goAttrAdd(g *C.igraph_t, sc C.int, n C.igraph_integer_t, records *C.igraph_vector_ptr_t) C.int {
	return trampoline("add_"+scope(sc).String()+"s", func() error { return attrAdd(g, scope(sc), int(n), records) })
}

//export goAttrPermute
func goAttrPermute(g, newg *C.igraph_t, sc C.int, idx *C.igraph_vector_int_t) C.int {
	return trampoline("permute_"+scope(sc).String()+"s", func() error { return attrPermute(g, newg, scope(sc), idx) })
}

//export goAttrCombine
func goAttrCombine(g, newg *C.igraph_t, sc C.int, merges *C.igraph_vector_int_list_t, comb *C.igraph_attribute_combination_t) C.int {
	return trampoline("combine_"+scope(sc).String()+"s", func() error { return attrCombine(g, newg, scope(sc), merges, comb) })
}

//export goAttrInfo
func goAttrInfo(g *C.igraph_t, gnames *C.igraph_strvector_t, gtypes *C.igraph_vector_int_t,
	vnames *C.igraph_strvector_t, vtypes *C.igraph_vector_int_t,
	enames *C.igraph_strvector_t, etypes *C.igraph_vector_int_t) C.int {
	return trampoline("get_info", func() error {
		return attrInfo(g,
			[3]*C.igraph_strvector_t{gnames, vnames, enames},
			[3]*C.igraph_vector_int_t{gtypes, vtypes, etypes})
	})
}

//export goAttrHas
func goAttrHas(g *C.igraph_t, sc C.int, name *C.char) (has C.int) {
	defer func() {
		if r := recover(); r != nil {
			has = 0
		}
	}()
	if attrHas(g, scope(sc), C.GoString(name)) {
		return 1
	}
	return 0
}

//export goAttrType
func goAttrType(g *C.igraph_t, sc C.int, name *C.char, typ *C.int) C.int {
	return trampoline("gettype", func() error {
		t, err := attrType(g, scope(sc), C.GoString(name))
		*typ = C.int(t)
		return err
	})
}

//export goAttrNumeric
func goAttrNumeric(g *C.igraph_t, sc C.int, name *C.char, ids *C.igraph_vector_int_t, out *C.igraph_vector_t) C.int {
	return trampoline("get_numeric_"+scope(sc).String()+"_attr", func() error {
		return attrNumeric(g, scope(sc), C.GoString(name), ids, out)
	})
}

//export goAttrString
func goAttrString(g *C.igraph_t, sc C.int, name *C.char, ids *C.igraph_vector_int_t, out *C.igraph_strvector_t) C.int {
	return trampoline("get_string_"+scope(sc).String()+"_attr", func() error {
		return attrString(g, scope(sc), C.GoString(name), ids, out)
	})
}

//export goAttrBool
func goAttrBool(g *C.igraph_t, sc C.int, name *C.char, ids *C.igraph_vector_int_t, out *C.igraph_vector_bool_t) C.int {
	return trampoline("get_bool_"+scope(sc).String()+"_attr", func() error {
		return attrBool(g, scope(sc), C.GoString(name), ids, out)
	})
}
