package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonality_Clamp(t *testing.T) {
	p := Personality{PlannedVsSpontaneous: -10, ComfortVsAuthenticity: 150, FamousVsHidden: 50}
	c := p.Clamp()

	assert.Equal(t, 0, c.PlannedVsSpontaneous)
	assert.Equal(t, 100, c.ComfortVsAuthenticity)
	assert.Equal(t, 50, c.FamousVsHidden)
}

func TestAnswers_Normalized_ClampsSliders(t *testing.T) {
	a := Answers{
		Origin:      "Berlin",
		Personality: &Personality{PlannedVsSpontaneous: 101, ComfortVsAuthenticity: -1, FamousVsHidden: 75},
	}

	n := a.Normalized()
	assert.Equal(t, 100, n.Personality.PlannedVsSpontaneous)
	assert.Equal(t, 0, n.Personality.ComfortVsAuthenticity)
	assert.Equal(t, 75, n.Personality.FamousVsHidden)

	// Original is untouched.
	assert.Equal(t, 101, a.Personality.PlannedVsSpontaneous)
}

func TestAnswers_Normalized_NilPersonality(t *testing.T) {
	a := Answers{Origin: "Berlin"}
	n := a.Normalized()
	assert.Nil(t, n.Personality)
}
