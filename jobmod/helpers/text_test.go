package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeText(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		s   string
		out map[string]bool
	}{
		{
			s:   "Line COOK needed now",
			out: map[string]bool{"line": true, "cook": true, "needed": true, "now": true},
		},
		{
			s:   "  spaced\tout\n tokens ",
			out: map[string]bool{"spaced": true, "out": true, "tokens": true},
		},
		{
			s:   "repeat repeat REPEAT",
			out: map[string]bool{"repeat": true},
		},
		{
			s:   "",
			out: map[string]bool{},
		},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, TokenizeText(fix.s))
	}
}

func TestJaccardSimilarity(t *testing.T) {
	assert := assert.New(t)

	a := TokenizeText("one two three four five")
	b := TokenizeText("one two three four")
	// 4 shared out of 5 total: exactly 0.8
	assert.InDelta(0.8, JaccardSimilarity(a, b), 0.0000001)

	c := TokenizeText("one two three four five six")
	d := TokenizeText("one two three four five")
	// 5 shared out of 6 total
	assert.InDelta(0.8333333, JaccardSimilarity(c, d), 0.0001)

	assert.Equal(1.0, JaccardSimilarity(a, a))
	assert.Equal(0.0, JaccardSimilarity(a, TokenizeText("")))
	assert.Equal(0.0, JaccardSimilarity(TokenizeText(""), TokenizeText("")))
}

func TestDedupeStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"a", "b", "c"}, DedupeStrings([]string{"a", "b", "a", "c", "b"}))
	var empty []string
	assert.Equal(empty, DedupeStrings([]string{}))
}
