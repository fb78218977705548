package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanByID(t *testing.T) {
	p, ok := PlanByID("king-2")
	require.True(t, ok)
	assert.Equal(t, "King-2", p.Name)
	assert.Equal(t, 1000.0, p.InvestAmount)
	assert.Equal(t, 300.0, p.DailyIncome)

	_, ok = PlanByID("king-9")
	assert.False(t, ok)
}

func TestCatalogConsistency(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range InvestmentPlans {
		assert.False(t, seen[p.ID], "duplicate plan id %s", p.ID)
		seen[p.ID] = true
		assert.Positive(t, p.InvestAmount)
		assert.Positive(t, p.DailyIncome)
		assert.Equal(t, 50, p.Duration)
		assert.Equal(t, p.DailyIncome*float64(p.Duration), p.TotalIncome, "plan %s", p.ID)
	}
}
