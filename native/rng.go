// SPDX-License-Identifier: MIT

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"math/rand/v2"
)

// source backs the native default RNG once installed. Only read inside
// native calls, only written under the lock.
var source rand.Source

// InstallRNG makes src the random source of the native library and
// returns the previously installed source (nil the first time).
//
// The native RNG is a thin adapter: every 64-bit draw is src.Uint64(), and
// native seeding requests are ignored. Seed src itself to get reproducible
// native results.
func InstallRNG(src rand.Source) (rand.Source, error) {
	return locked(func() (rand.Source, error) { return installRNG(src) })
}

// installRNG is InstallRNG for callers holding the lock.
func installRNG(src rand.Source) (rand.Source, error) {
	if err := check(C.bridge_rng_install()); err != nil {
		return nil, err
	}
	prev := source
	source = src
	return prev, nil
}

// Seed installs a fresh PCG source seeded with seed and returns it.
func Seed(seed uint64) (rand.Source, error) {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	if _, err := InstallRNG(src); err != nil {
		return nil, err
	}
	return src, nil
}

// rngDraw serves the native adapter's get callback.
func rngDraw() uint64 {
	if source == nil {
		return rand.Uint64()
	}
	return source.Uint64()
}

// randomness returns a generator over the installed source for the Random
// combination policy, or nil without one.
func randomness() *rand.Rand {
	if source == nil {
		return nil
	}
	return rand.New(source)
}

// restoreRNG puts back the native default RNG found at install time.
// Caller holds the lock.
func restoreRNG() {
	C.bridge_rng_restore()
	source = nil
}
