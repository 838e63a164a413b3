package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/startup-sim/internal/types"
)

func baselineCompany() *types.Company {
	return &types.Company{
		ID:             "c1",
		Type:           types.BusinessTech,
		CurrentQuarter: 1,
		CurrentYear:    1,
		Cash:           250000,
		Revenue:        50000,
		Expenses:       65000,
		InitialCapital: 250000,
		Employees:      8,
		Customers:      0,
		MarketShare:    0.005,
	}
}

func TestProductProgressDelta(t *testing.T) {
	c := baselineCompany()

	// cash/(2*capital) = 0.5, so the capital factor clamps to its low end
	assert.Equal(t, 28.0, productProgressDelta(c))

	// Flush with cash, the factor clamps at 1.5
	c.Cash = 2000000
	assert.Equal(t, 85.0, productProgressDelta(c))
}

func TestProductProgressDeltaZeroCapital(t *testing.T) {
	c := baselineCompany()
	c.InitialCapital = 0
	c.Cash = 100000

	// A zero-capital company still makes progress at the clamped minimum
	assert.Equal(t, 28.0, productProgressDelta(c))
}

func TestNextProductProgressCapped(t *testing.T) {
	c := baselineCompany()
	c.ProductProgress = 95

	assert.Equal(t, 100.0, nextProductProgress(c))
}

func TestCustomerCount(t *testing.T) {
	c := baselineCompany()

	// No existing customers: acquisition only, driven by product readiness
	// and last quarter's spend
	assert.Equal(t, 5, customerCount(c, 28))
}

func TestCustomerCountRetention(t *testing.T) {
	c := baselineCompany()
	c.Customers = 100
	c.Expenses = 0

	// With no spend there is no acquisition, only retention
	assert.Equal(t, 88, customerCount(c, 28))
}

func TestQuarterlyRevenue(t *testing.T) {
	c := baselineCompany()

	// Existing revenue engages the compounding growth factor
	assert.Equal(t, 403.0, quarterlyRevenue(c, 5, 28))

	// A pre-revenue company gets no growth factor
	c.Revenue = 0
	assert.Equal(t, 384.0, quarterlyRevenue(c, 5, 28))
}

func TestRevenuePerCustomerByType(t *testing.T) {
	assert.Equal(t, 120.0, revenuePerCustomer(types.BusinessTech))
	assert.Equal(t, 110.0, revenuePerCustomer(types.BusinessEcommerce))
	assert.Equal(t, 90.0, revenuePerCustomer(types.BusinessService))
	assert.Equal(t, 100.0, revenuePerCustomer(types.BusinessManufacturing))
}

func TestQuarterlyExpenses(t *testing.T) {
	c := baselineCompany()

	// 8*7000 payroll + 10000+2500 fixed + 250 variable, scaled by
	// 1 + sqrt(8)*0.2
	assert.Equal(t, 107641.0, quarterlyExpenses(c, 5))
}

func TestValuationFlooredAtTwiceCapital(t *testing.T) {
	c := baselineCompany()

	// 403*4*8 is far below 2x capital
	assert.Equal(t, 500000.0, valuation(c, 403))

	// High enough revenue escapes the floor
	assert.Equal(t, 1600000.0, valuation(c, 50000))
}

func TestCashMayGoNegative(t *testing.T) {
	c := baselineCompany()
	c.Cash = 1000

	assert.Equal(t, -4000.0, cashAfterQuarter(c, 5000, 10000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, clamp(0.2, 0.5, 1.5))
	assert.Equal(t, 1.5, clamp(2.0, 0.5, 1.5))
	assert.Equal(t, 1.0, clamp(1.0, 0.5, 1.5))
}
