package main

import (
	"testing"

	"github.com/limaJavier/glucose/pkg/glucose"
	"github.com/stretchr/testify/assert"
)

func TestModelLine(t *testing.T) {
	h := glucose.Init()
	defer glucose.Release(h)

	assert.True(t, glucose.AddClause(h, []int32{1, 2}))
	assert.True(t, glucose.AddClause(h, []int32{-1}))
	assert.True(t, glucose.Solve(h))

	assert.Equal(t, "v -1 2 0", modelLine(h, 2))
}
