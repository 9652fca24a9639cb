// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(Of("a", "b"), Of[string](), Of("c"))
	assert.Equal([]string{"a", "b", "c"}, slices.Collect(seq))

	var first []string
	for val := range seq {
		first = append(first, val)
		break
	}
	assert.Equal([]string{"a"}, first)
}

func TestEach(t *testing.T) {
	assert := assert.New(t)

	words := []string{"ab", "", "c"}
	seq := Each(words, func(word string) iter.Seq[string] {
		return Of(strings.Split(word, "")...)
	})
	assert.Equal([]string{"a", "b", "c"}, slices.Collect(seq))
}
