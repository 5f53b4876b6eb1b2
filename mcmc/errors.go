// SPDX-License-Identifier: MIT

package mcmc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampleCount is returned by Run when fewer than one sample is requested.
	ErrInvalidSampleCount = errors.New("mcmc: sample count must be >= 1")

	// ErrNilTarget is returned by New when no density target is supplied.
	ErrNilTarget = errors.New("mcmc: target is nil")
)

// Operation names used as error prefixes.
const (
	opNew = "New"
	opRun = "Run"
)

// mcmcErrorf prefixes err with the operation name, keeping it matchable by errors.Is.
func mcmcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
