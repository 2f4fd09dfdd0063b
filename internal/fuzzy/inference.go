package fuzzy

// defuzzSamples is the discretization resolution of the output universe used
// for centroid defuzzification.
const defuzzSamples = 1001

// neutralScore is returned when no rule fires, which can only happen at
// degenerate boundary inputs.
const neutralScore = 5.0

// System is one Mamdani inference system: input variables, a single output
// variable, and a rule base. The three systems (clarity, confidence,
// relevance) are independent and share no intermediate fuzzy state.
type System struct {
	inputs map[string]Variable
	output Variable
	rules  []Rule
}

func newSystem(output Variable, rules []Rule, inputs ...Variable) *System {
	m := make(map[string]Variable, len(inputs))
	for _, v := range inputs {
		m[v.Name] = v
	}
	return &System{inputs: m, output: output, rules: rules}
}

// fire computes the firing strength of a rule for the given crisp inputs:
// clause membership degrees combined with min (AND) or max (OR).
func (s *System) fire(rule Rule, crisp map[string]float64) float64 {
	strength := 0.0
	for i, clause := range rule.Clauses {
		v, ok := s.inputs[clause.Input]
		if !ok {
			return 0
		}
		degree := v.Sets[clause.Set].Membership(crisp[clause.Input])
		if i == 0 {
			strength = degree
			continue
		}
		switch rule.Op {
		case OpAnd:
			if degree < strength {
				strength = degree
			}
		case OpOr:
			if degree > strength {
				strength = degree
			}
		}
	}
	return strength
}

// Infer runs the rule base on crisp inputs and defuzzifies the aggregated
// output set via its centroid. Each rule's firing strength clips its
// consequent set; clipped sets are aggregated with max.
func (s *System) Infer(crisp map[string]float64) float64 {
	strengths := make([]float64, len(s.rules))
	fired := false
	for i, rule := range s.rules {
		strengths[i] = s.fire(rule, crisp)
		if strengths[i] > 0 {
			fired = true
		}
	}
	if !fired {
		return neutralScore
	}

	step := (universeMax - universeMin) / float64(defuzzSamples-1)
	var weighted, total float64
	for i := 0; i < defuzzSamples; i++ {
		x := universeMin + float64(i)*step
		mu := 0.0
		for j, rule := range s.rules {
			if strengths[j] == 0 {
				continue
			}
			m := s.output.Sets[rule.Consequent].Membership(x)
			if m > strengths[j] {
				m = strengths[j]
			}
			if m > mu {
				mu = m
			}
		}
		weighted += x * mu
		total += mu
	}
	if total == 0 {
		return neutralScore
	}
	return weighted / total
}
