package liouville

import "errors"

var (
	// ErrBadTopology indicates an exchange topology outside {TwoState, ThreeState, FourState}.
	ErrBadTopology = errors.New("liouville: invalid exchange topology")
	// ErrBadPopulation indicates state populations outside [0, 1] or summing past 1.
	ErrBadPopulation = errors.New("liouville: populations out of range")
	// ErrBadOffsets indicates an offsets slice shorter than the number of states.
	ErrBadOffsets = errors.New("liouville: offsets shorter than state count")
	// ErrBadDuration indicates a negative evolution or equilibration duration.
	ErrBadDuration = errors.New("liouville: negative duration")
)
