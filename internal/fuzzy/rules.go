package fuzzy

// Operator combines the clause degrees of a rule's antecedent.
type Operator int

// Antecedent combinators: conjunction via min, disjunction via max.
const (
	OpAnd Operator = iota
	OpOr
)

// Clause references one input variable and one of its sets.
type Clause struct {
	Input string
	Set   string
}

// Rule is a declarative fuzzy rule: antecedent clauses joined by an operator,
// and the consequent output set the firing strength clips.
type Rule struct {
	Clauses    []Clause
	Op         Operator
	Consequent string
}

// Clarity is driven by coherence and filler usage. Note that filler_ratio is
// inverted during normalization (10 = no fillers), so "few fillers" activates
// its high set and "many fillers" its low set.
func clarityRules() []Rule {
	return []Rule{
		{Clauses: []Clause{{VarCoherence, SetHigh}, {VarFillerRatio, SetHigh}}, Op: OpAnd, Consequent: SetExcellent},
		{Clauses: []Clause{{VarCoherence, SetHigh}, {VarFillerRatio, SetMedium}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarCoherence, SetMedium}, {VarFillerRatio, SetHigh}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarCoherence, SetMedium}, {VarFillerRatio, SetMedium}}, Op: OpAnd, Consequent: SetFair},
		{Clauses: []Clause{{VarCoherence, SetLow}, {VarFillerRatio, SetLow}}, Op: OpOr, Consequent: SetPoor},
	}
}

// Confidence is driven by confidence indicators and answer length. A low
// confidence level maps to poor regardless of word count.
func confidenceRules() []Rule {
	return []Rule{
		{Clauses: []Clause{{VarConfidenceLevel, SetHigh}, {VarWordCount, SetHigh}}, Op: OpAnd, Consequent: SetExcellent},
		{Clauses: []Clause{{VarConfidenceLevel, SetHigh}, {VarWordCount, SetMedium}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarConfidenceLevel, SetMedium}, {VarWordCount, SetMedium}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarConfidenceLevel, SetMedium}, {VarWordCount, SetLow}}, Op: OpAnd, Consequent: SetFair},
		{Clauses: []Clause{{VarConfidenceLevel, SetLow}}, Op: OpAnd, Consequent: SetPoor},
	}
}

// Relevance is driven by technical depth and vocabulary complexity. Low
// technical depth maps to poor regardless of complexity.
func relevanceRules() []Rule {
	return []Rule{
		{Clauses: []Clause{{VarTechnicalDepth, SetHigh}, {VarComplexity, SetHigh}}, Op: OpAnd, Consequent: SetExcellent},
		{Clauses: []Clause{{VarTechnicalDepth, SetHigh}, {VarComplexity, SetMedium}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarTechnicalDepth, SetMedium}, {VarComplexity, SetMedium}}, Op: OpAnd, Consequent: SetGood},
		{Clauses: []Clause{{VarTechnicalDepth, SetMedium}, {VarComplexity, SetLow}}, Op: OpAnd, Consequent: SetFair},
		{Clauses: []Clause{{VarTechnicalDepth, SetLow}}, Op: OpAnd, Consequent: SetPoor},
	}
}
