package dimacs

import (
	"strings"
	"testing"

	"github.com/limaJavier/glucose/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	input := "c a small instance\n" +
		"p cnf 3 2\n" +
		"1 -2 0\n" +
		"2 3 0\n"

	instance, err := Parse(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Equal(t, int32(3), instance.Variables)
	assert.Equal(t, [][]int32{{1, -2}, {2, 3}}, instance.Clauses)
}

func TestParseRelaxedVariableCount(t *testing.T) {
	// The problem line understates the variable count; the parser raises
	// it to the highest literal seen.
	input := "p cnf 2 1\n-5 1 0\n"

	instance, err := Parse(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Equal(t, int32(5), instance.Variables)
}

func TestParseInvalidProblemLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 3\n1 0\n"))
	assert.Error(t, err)
}

func TestParseInvalidLiteral(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 x 0\n"))
	assert.Error(t, err)
}

func TestSerializeRoundTrip(t *testing.T) {
	instance := engine.Instance{
		Variables: 4,
		Clauses:   [][]int32{{1, -3}, {2, 4, -1}},
	}

	parsed, err := Parse(strings.NewReader(Serialize(instance)))

	assert.NoError(t, err)
	assert.Equal(t, instance, parsed)
}
