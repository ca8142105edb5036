// SPDX-License-Identifier: MIT

package native

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// installed is set once the handlers, the attribute table and the RNG are
// registered with the native library.
var installed bool

// ensureInstalled performs the one-time registration. Caller holds the lock.
func ensureInstalled() error {
	if installed {
		return nil
	}
	installNativeHandlers()
	installAttributeTable()
	src := source
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if _, err := installRNG(src); err != nil {
		restoreAttributeTable()
		restoreNativeHandlers()
		return err
	}
	installed = true
	log.Debug("native library initialised")
	return nil
}

// Options configure Init.
type Options struct {
	Logger     *logrus.Logger
	Source     rand.Source
	Handlers   *Handlers
	Interrupts bool
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes diagnostics to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSeed makes native randomness reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }
}

// WithSource backs native randomness with src.
func WithSource(src rand.Source) Option {
	return func(o *Options) { o.Source = src }
}

// WithHandlers installs warning and fatal receivers.
func WithHandlers(h Handlers) Option {
	return func(o *Options) { o.Handlers = &h }
}

// WithSignalInterrupts lets SIGINT interrupt running native calls.
func WithSignalInterrupts() Option {
	return func(o *Options) { o.Interrupts = true }
}

// stopSignals undoes WithSignalInterrupts.
var stopSignals func()

// Init registers the binding with the native library. Calling it is
// optional: the first native call registers with defaults. Init may be
// called again to change options.
func Init(opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	SetLogger(o.Logger)
	if o.Handlers != nil {
		InstallHandlers(*o.Handlers)
	}
	return exclusive(func() error {
		if o.Source != nil {
			if _, err := installRNG(o.Source); err != nil {
				return err
			}
		}
		if o.Interrupts && stopSignals == nil {
			stopSignals = HandleInterrupts()
		}
		return nil
	})
}

// Restore puts back the error handlers, attribute table and RNG found
// before registration. Graphs created since must be closed first: their
// attributes belong to the table being removed.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	if !installed {
		return
	}
	restoreAttributeTable()
	restoreNativeHandlers()
	restoreRNG()
	if stopSignals != nil {
		stopSignals()
		stopSignals = nil
	}
	installed = false
	log.Debug("native library registration restored")
}
