// SPDX-License-Identifier: MIT

// Package config loads binding settings from YAML or TOML files and the
// environment, and turns them into native.Init options.
package config
