package baccarat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		player int
		bank   int
		want   Outcome
	}{
		{"player higher", 9, 7, OutcomePlayer},
		{"bank higher", 3, 5, OutcomeBank},
		{"equal values tie", 6, 6, OutcomeTie},
		{"double zero ties", 0, 0, OutcomeTie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.player, tt.bank))
		})
	}
}
