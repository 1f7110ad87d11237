package builder

import "errors"

// ErrTooFewCities indicates a size parameter below the constructor's minimum.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil graph or nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
