package logparse

// DefaultMatchers returns the pimpleFoam-family line rules. The
// ExecutionTime line doubles as the end-of-record marker and is kept
// last so field matchers for a line always run before finalization.
// DefaultMatchers 返回 pimpleFoam 系列求解器的行规则。
func DefaultMatchers() ([]*Matcher, error) {
	specs := []MatcherSpec{
		{
			Pattern: `^Courant Number mean: (.+) max: (.+)$`,
			Fields:  []Field{FieldCourantMean, FieldCourantMax},
		},
		{
			Pattern: `^deltaT = (.+)$`,
			Fields:  []Field{FieldDeltaT},
		},
		{
			Pattern: `^Time = (.+)$`,
			Fields:  []Field{FieldTime},
		},
		{
			Pattern: `^time step continuity errors : sum local = (.+), global = (.+), cumulative = (.+)$`,
			Fields:  []Field{FieldContinuityLocal, FieldContinuityGlobal, FieldContinuityCumulative},
		},
		{
			Pattern: `^PIMPLE: converged in (\d+) iterations$`,
			Fields:  []Field{FieldNIterations},
			Flag:    FlagConverged,
		},
		{
			Pattern: `^PIMPLE: not converged within (\d+) iterations$`,
			Fields:  []Field{FieldNIterations},
			Flag:    FlagNotConverged,
		},
		{
			Pattern: `^ExecutionTime = (.+) s  ClockTime = (.+) s$`,
			Fields:  []Field{FieldExecutionTime, FieldClockTime},
			End:     true,
		},
	}

	matchers := make([]*Matcher, 0, len(specs))
	for _, spec := range specs {
		m, err := NewMatcher(spec)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}
