package fuzzy

// The universe of discourse for every variable is [0, 10].
const (
	universeMin = 0.0
	universeMax = 10.0
)

// Input set names.
const (
	SetLow    = "low"
	SetMedium = "medium"
	SetHigh   = "high"
)

// Output set names.
const (
	SetPoor      = "poor"
	SetFair      = "fair"
	SetGood      = "good"
	SetExcellent = "excellent"
)

// Input variable names.
const (
	VarWordCount       = "word_count"
	VarCoherence       = "coherence"
	VarConfidenceLevel = "confidence_level"
	VarTechnicalDepth  = "technical_depth"
	VarFillerRatio     = "filler_ratio"
	VarComplexity      = "complexity"
)

// Variable is a fuzzy variable: a name plus its partition into named sets.
type Variable struct {
	Name string
	Sets map[string]Triangle
}

// newInputVariable partitions an input variable into the standard
// low/medium/high triangles with overlapping supports.
func newInputVariable(name string) Variable {
	return Variable{
		Name: name,
		Sets: map[string]Triangle{
			SetLow:    {A: 0, B: 0, C: 4},
			SetMedium: {A: 3, B: 5, C: 7},
			SetHigh:   {A: 6, B: 10, C: 10},
		},
	}
}

// newOutputVariable partitions an output variable into the four quality
// bands used by every score.
func newOutputVariable(name string) Variable {
	return Variable{
		Name: name,
		Sets: map[string]Triangle{
			SetPoor:      {A: 0, B: 0, C: 3},
			SetFair:      {A: 2, B: 4, C: 6},
			SetGood:      {A: 5, B: 7, C: 9},
			SetExcellent: {A: 8, B: 10, C: 10},
		},
	}
}
