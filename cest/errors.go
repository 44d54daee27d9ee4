package cest

import "errors"

var (
	// ErrLengthMismatch indicates measurement arrays of differing lengths.
	ErrLengthMismatch = errors.New("cest: measurement arrays length mismatch")
	// ErrBadConfig indicates missing or malformed experiment constants.
	ErrBadConfig = errors.New("cest: invalid experiment configuration")
	// ErrEigenFailed indicates a non-convergent eigendecomposition of the Liouvillian.
	ErrEigenFailed = errors.New("cest: eigendecomposition failed")
)
