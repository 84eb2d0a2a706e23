package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: "Here you go: {\"a\":{\"b\":2}} Enjoy!", want: `{"a":{"b":2}}`},
		{name: "braces inside strings", in: `{"a":"} not the end {"} trailing`, want: `{"a":"} not the end {"}`},
		{name: "escaped quote", in: `{"a":"say \"hi\" }"}`, want: `{"a":"say \"hi\" }"}`},
		{name: "array first", in: `note [1,[2,3]] done {"x":1}`, want: `[1,[2,3]]`},
		{name: "unbalanced left alone", in: `{"a":1`, want: `{"a":1`},
		{name: "no json", in: "  sorry  ", want: "sorry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.in))
		})
	}
}
