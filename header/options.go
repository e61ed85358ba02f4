package header

import "sheet-mapper/internal/match"

// Options tune Reconcile.
type Options struct {
	// Threshold is the minimum partial similarity score (1-100) for a
	// header cell to be accepted for a field.
	Threshold int
	// Aliases maps a field name to the exact header label that denotes it.
	Aliases map[string]string
	// MaxCandidates limits the suggestions reported for an unmapped field.
	MaxCandidates int
	// AmbiguityGap is the score distance under which the runner-up of a
	// fuzzy match is reported as ambiguous.
	AmbiguityGap int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Threshold:     match.DefaultThreshold,
		MaxCandidates: 3,
		AmbiguityGap:  match.DefaultAmbiguityGap,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.Threshold <= 0 {
		o.Threshold = def.Threshold
	}

	if o.MaxCandidates <= 0 {
		o.MaxCandidates = def.MaxCandidates
	}

	if o.AmbiguityGap <= 0 {
		o.AmbiguityGap = def.AmbiguityGap
	}

	return o
}
