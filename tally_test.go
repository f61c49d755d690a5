package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyCounts(t *testing.T) {
	assert := assert.New(t)

	tally := newTally()
	for _, tok := range []string{"b", "a", "c", "a", "b", "a", "d"} {
		tally.add(tok)
	}

	assert.Equal(4, tally.count())
	assert.Equal(7, tally.getTotal())

	keys := []string{}
	counts := []int{}
	for _, item := range tally.getItens() {
		keys = append(keys, item.getKey())
		counts = append(counts, item.getCount())
	}
	assert.Equal([]string{"a", "b", "c", "d"}, keys)
	assert.Equal([]int{3, 2, 1, 1}, counts)
}
