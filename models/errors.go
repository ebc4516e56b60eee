package models

import "errors"

var (
	// ErrInvalidParameters indicates inconsistent or non-physical model parameters.
	ErrInvalidParameters = errors.New("models: invalid model parameters")
	// ErrComposition indicates a mole-fraction vector of the wrong length.
	ErrComposition = errors.New("models: composition length does not match model")
	// ErrOutOfDomain indicates a state outside the model's range (e.g. bρ ≥ 1).
	ErrOutOfDomain = errors.New("models: state outside model domain")
)
