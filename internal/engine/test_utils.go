package engine

import "math/rand"

// GenerateInstance builds a random CNF instance over the given number of
// variables. Every variable joins each clause with probability 1/2; a
// clause that would come out empty receives one random literal instead.
func GenerateInstance(variables int32, clauses int) Instance {
	instance := Instance{
		Variables: variables,
		Clauses:   make([][]int32, clauses),
	}

	for i := 0; i < clauses; i++ {
		instance.Clauses[i] = make([]int32, 0, variables)
		for v := int32(1); v <= variables; v++ {
			if rand.Float32() < 0.5 {
				var sign int32 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				instance.Clauses[i] = append(instance.Clauses[i], sign*v)
			}
		}

		if len(instance.Clauses[i]) == 0 {
			var sign int32 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			instance.Clauses[i] = append(instance.Clauses[i], sign*(1+rand.Int31n(variables)))
		}
	}

	return instance
}

// AssertModel reports whether the model satisfies every clause of the
// instance.
func AssertModel(instance Instance, model []bool) bool {
	if int32(len(model)) < instance.Variables {
		return false
	}

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if model[v-1] == (lit > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
