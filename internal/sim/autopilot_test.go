package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/startup-sim/internal/types"
)

func TestChooseOptionEmpty(t *testing.T) {
	chooser := NewOptionChooser(NewRand(1))
	d := &types.Decision{}

	assert.Nil(t, chooser.ChooseOption(baselineCompany(), d))
}

func TestChooseOptionCashTightAvoidsExpensive(t *testing.T) {
	chooser := NewOptionChooser(NewRand(1))
	c := baselineCompany()
	c.Cash = 1000
	c.QuarterlyBurnRate = 30000

	d := &types.Decision{
		Options: []types.DecisionOption{
			{ID: "expensive", Metrics: types.OptionMetrics{Cost: 100000, ROI: 1.0}},
			{ID: "cheap", Metrics: types.OptionMetrics{Cost: 0, ROI: 1.0}},
		},
	}

	// The cost penalty dwarfs the score jitter, so the cheap option always
	// wins while cash is tight
	for i := 0; i < 20; i++ {
		option := chooser.ChooseOption(c, d)
		require.NotNil(t, option)
		assert.Equal(t, "cheap", option.ID)
	}
}

func TestChooseOptionReturnsKnownOption(t *testing.T) {
	chooser := NewOptionChooser(NewRand(1))
	c := baselineCompany()

	d := &types.Decision{
		Options: []types.DecisionOption{
			{ID: "opt_1", Metrics: types.OptionMetrics{ROI: 1.5}},
			{ID: "opt_2", Metrics: types.OptionMetrics{ROI: 1.2}},
		},
	}

	option := chooser.ChooseOption(c, d)
	require.NotNil(t, option)
	assert.Contains(t, []string{"opt_1", "opt_2"}, option.ID)
}

func TestAdvanceAutoManaged(t *testing.T) {
	m := newTestManager(t)
	managed, err := m.CreateCompany("user1", "Managed", types.BusinessTech, types.FundingSeed)
	require.NoError(t, err)
	manual, err := m.CreateCompany("user1", "Manual", types.BusinessTech, types.FundingSeed)
	require.NoError(t, err)
	require.NoError(t, m.SetAutoManaged(managed.ID, true))

	aas := NewAutoAdvanceSystem(m, time.Hour)
	defer aas.Stop()
	aas.advanceAutoManaged()

	advanced, err := m.GetCompany(managed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, advanced.CurrentQuarter)

	untouched, err := m.GetCompany(manual.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, untouched.CurrentQuarter)
}
