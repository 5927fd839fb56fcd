// Copyright 2026 The fetcher Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetcher

// A Phase identifies one of the three interceptor registries of a
// client and the pipeline stage it runs in.
type Phase int

const (
	// PhaseRequest is the request phase. Its registry runs first and
	// contains, by convention, the terminal network call as its
	// highest-ordered interceptor.
	PhaseRequest Phase = iota
	// PhaseResponse is the response phase. Its registry runs after
	// the request phase completes without error.
	PhaseResponse
	// PhaseError is the error phase. Its registry runs when any
	// other phase fails; its interceptors may clear the exchange
	// error to recover the call.
	PhaseError
	// phaseSentinel provides the total number of phases.
	phaseSentinel

	// numPhases provides the total number of phases as an int.
	numPhases = int(phaseSentinel)
)

var phaseNames = []string{
	"Request",
	"Response",
	"Error",
}

// Phases returns all pipeline phases in the order their registries
// are consulted.
func Phases() []Phase {
	return []Phase{PhaseRequest, PhaseResponse, PhaseError}
}

// Name returns the name of the phase.
func (p Phase) Name() string {
	return phaseNames[int(p)]
}

// String returns the name of the phase.
func (p Phase) String() string {
	return p.Name()
}
