// SPDX-License-Identifier: MIT

// Package config loads the orbitals binary settings from YAML and the
// environment.
//
// Precedence, lowest first: DefaultConfig, the YAML file, ORBITALS_*
// environment variables, command-line flags (applied by the caller).
// A missing file is not an error.
package config
