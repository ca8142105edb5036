// SPDX-License-Identifier: MIT

package native

import "github.com/sirupsen/logrus"

// log receives diagnostics of the binding: native warnings, callback
// failures, leaked values, graph lifetimes.
var log = logrus.New()

// SetLogger replaces the logger of the package. A nil logger is ignored.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Logger returns the logger of the package.
func Logger() *logrus.Logger { return log }
