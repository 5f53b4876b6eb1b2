// SPDX-License-Identifier: MIT

package orbital

import (
	"errors"

	"github.com/katalvlaran/orbitals/mcmc"
)

var (
	// ErrInvalidSampleCount is returned when fewer than one point is requested.
	// It is the sampler's sentinel, so errors.Is matches either name.
	ErrInvalidSampleCount = mcmc.ErrInvalidSampleCount

	// ErrEmptyBatch is returned by GenerateBatch for an empty request list.
	ErrEmptyBatch = errors.New("orbital: batch has no requests")
)
